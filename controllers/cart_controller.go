package controllers

import (
	"net/http"
	"sync"
	"time"

	"portfolio-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartController keeps carts in process memory, keyed by the caller's
// session id. Carts are a pre-checkout scratchpad: losing them on restart
// is acceptable, and checkout reads the item list from the request body,
// not from here.
type CartController struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewCartController() *CartController {
	return &CartController{carts: make(map[string]*models.Cart)}
}

func sessionID(c *gin.Context) string {
	if id := c.Query("session_id"); id != "" {
		return id
	}
	return "default"
}

// cart returns the session's cart, creating it on first touch. Caller must
// hold mu.
func (cc *CartController) cart(session string) *models.Cart {
	cart, ok := cc.carts[session]
	if !ok {
		cart = models.NewCart()
		cc.carts[session] = cart
	}
	return cart
}

func (cc *CartController) GetCart(c *gin.Context) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	c.JSON(http.StatusOK, cc.cart(sessionID(c)))
}

// AddItem appends a product to the cart, merging quantity when the product
// is already present.
func (cc *CartController) AddItem(c *gin.Context) {
	var in models.CartItemCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	cart := cc.cart(sessionID(c))
	for i := range cart.Items {
		if cart.Items[i].ProductID == in.ProductID {
			cart.Items[i].Quantity += qty
			cart.UpdatedAt = time.Now().UTC()
			c.JSON(http.StatusOK, cart)
			return
		}
	}
	cart.Items = append(cart.Items, models.CartItem{
		ID:        uuid.NewString(),
		ProductID: in.ProductID,
		Quantity:  qty,
		AddedAt:   time.Now().UTC(),
	})
	cart.UpdatedAt = time.Now().UTC()
	c.JSON(http.StatusOK, cart)
}

func (cc *CartController) UpdateItem(c *gin.Context) {
	var in models.CartItemUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	cart := cc.cart(sessionID(c))
	itemID := c.Param("item_id")
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = in.Quantity
			cart.UpdatedAt = time.Now().UTC()
			c.JSON(http.StatusOK, cart)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cart := cc.cart(sessionID(c))
	itemID := c.Param("item_id")
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cart.UpdatedAt = time.Now().UTC()
			c.JSON(http.StatusOK, cart)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
}

func (cc *CartController) ClearCart(c *gin.Context) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cart := cc.cart(sessionID(c))
	cart.Items = []models.CartItem{}
	cart.UpdatedAt = time.Now().UTC()
	c.JSON(http.StatusOK, cart)
}
