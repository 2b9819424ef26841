package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PortfolioController serves the editable site sections. Every read
// degrades to the built-in defaults when the store is empty or down;
// writes fail loudly.
type PortfolioController struct {
	Content repository.ContentRepository
	Logger  *zap.Logger
}

// --- personal info ---

func (pc *PortfolioController) fetchPersonalInfo(ctx context.Context) *models.PersonalInfo {
	info, err := pc.Content.FindPersonalInfo(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			pc.Logger.Warn("personal info query failed, serving defaults", zap.Error(err))
		}
		return defaultPersonalInfo()
	}
	return info
}

func (pc *PortfolioController) GetPersonalInfo(c *gin.Context) {
	c.JSON(http.StatusOK, pc.fetchPersonalInfo(c.Request.Context()))
}

func (pc *PortfolioController) UpdatePersonalInfo(c *gin.Context) {
	var upd models.PersonalInfoUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	_, err := pc.Content.FindPersonalInfo(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		// First write: store a full document, defaults filling the gaps.
		info := personalInfoFromUpdate(&upd)
		if err := pc.Content.InsertPersonalInfo(ctx, info); err != nil {
			pc.Logger.Error("error creating personal info", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, info)
		return
	}
	if err != nil {
		pc.Logger.Error("error updating personal info", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated, err := pc.Content.UpdatePersonalInfo(ctx, &upd)
	if err != nil {
		pc.Logger.Error("error updating personal info", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func personalInfoFromUpdate(upd *models.PersonalInfoUpdate) *models.PersonalInfo {
	info := defaultPersonalInfo()
	info.ID = uuid.NewString()
	if upd.Name != nil {
		info.Name = *upd.Name
	}
	if upd.Nickname != nil {
		info.Nickname = *upd.Nickname
	}
	if upd.Title != nil {
		info.Title = *upd.Title
	}
	if upd.Tagline != nil {
		info.Tagline = *upd.Tagline
	}
	if upd.Description != nil {
		info.Description = *upd.Description
	}
	if upd.Email != nil {
		info.Email = *upd.Email
	}
	if upd.Phone != nil {
		info.Phone = *upd.Phone
	}
	if upd.Location != nil {
		info.Location = *upd.Location
	}
	if upd.Avatar != nil {
		info.Avatar = *upd.Avatar
	}
	if upd.Resume != nil {
		info.Resume = *upd.Resume
	}
	if upd.Socials != nil {
		info.Socials = *upd.Socials
	}
	return info
}

// --- stats ---

func (pc *PortfolioController) fetchStats(ctx context.Context) []models.Stat {
	stats, err := pc.Content.ListStats(ctx)
	if err != nil {
		pc.Logger.Warn("stats query failed, serving defaults", zap.Error(err))
		return defaultStats()
	}
	if len(stats) == 0 {
		return defaultStats()
	}
	return stats
}

func (pc *PortfolioController) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, pc.fetchStats(c.Request.Context()))
}

func (pc *PortfolioController) CreateStat(c *gin.Context) {
	var in models.StatCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stat := &models.Stat{ID: uuid.NewString(), Value: in.Value, Label: in.Label, Order: in.Order}
	if err := pc.Content.InsertStat(c.Request.Context(), stat); err != nil {
		pc.Logger.Error("error creating stat", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stat)
}

// --- services ---

func (pc *PortfolioController) fetchServices(ctx context.Context) []models.Service {
	services, err := pc.Content.ListServices(ctx)
	if err != nil {
		pc.Logger.Warn("services query failed, serving defaults", zap.Error(err))
		return defaultServices()
	}
	if len(services) == 0 {
		return defaultServices()
	}
	return services
}

func (pc *PortfolioController) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, pc.fetchServices(c.Request.Context()))
}

func (pc *PortfolioController) CreateService(c *gin.Context) {
	var in models.ServiceCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := &models.Service{ID: uuid.NewString(), Title: in.Title, Description: in.Description, Icon: in.Icon}
	if err := pc.Content.InsertService(c.Request.Context(), svc); err != nil {
		pc.Logger.Error("error creating service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (pc *PortfolioController) DeleteService(c *gin.Context) {
	pc.deleteByID(c, "Service", pc.Content.DeleteService)
}

// --- projects ---

func (pc *PortfolioController) fetchProjects(ctx context.Context) []models.Project {
	projects, err := pc.Content.ListProjects(ctx)
	if err != nil {
		pc.Logger.Warn("projects query failed, serving defaults", zap.Error(err))
		return defaultProjects()
	}
	if len(projects) == 0 {
		return defaultProjects()
	}
	return projects
}

func (pc *PortfolioController) GetProjects(c *gin.Context) {
	c.JSON(http.StatusOK, pc.fetchProjects(c.Request.Context()))
}

func (pc *PortfolioController) GetProject(c *gin.Context) {
	project, err := pc.Content.FindProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		pc.Logger.Error("error getting project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (pc *PortfolioController) CreateProject(c *gin.Context) {
	var in models.ProjectCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	project := &models.Project{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Image:        in.Image,
		Category:     in.Category,
		Technologies: in.Technologies,
		Link:         in.Link,
		Github:       in.Github,
	}
	if err := pc.Content.InsertProject(c.Request.Context(), project); err != nil {
		pc.Logger.Error("error creating project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (pc *PortfolioController) DeleteProject(c *gin.Context) {
	pc.deleteByID(c, "Project", pc.Content.DeleteProject)
}

// --- products ---

func (pc *PortfolioController) fetchProducts(ctx context.Context) []models.Product {
	products, err := pc.Content.ListProducts(ctx)
	if err != nil {
		pc.Logger.Warn("products query failed, serving defaults", zap.Error(err))
		return defaultProducts()
	}
	if len(products) == 0 {
		return defaultProducts()
	}
	return products
}

func (pc *PortfolioController) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, pc.fetchProducts(c.Request.Context()))
}

func (pc *PortfolioController) CreateProduct(c *gin.Context) {
	var in models.ProductCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product := &models.Product{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Image:         in.Image,
		Category:      in.Category,
		Rating:        in.Rating,
		Downloads:     in.Downloads,
	}
	if err := pc.Content.InsertProduct(c.Request.Context(), product); err != nil {
		pc.Logger.Error("error creating product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *PortfolioController) DeleteProduct(c *gin.Context) {
	pc.deleteByID(c, "Product", pc.Content.DeleteProduct)
}

// --- testimonials ---

func (pc *PortfolioController) fetchTestimonials(ctx context.Context) []models.Testimonial {
	testimonials, err := pc.Content.ListTestimonials(ctx)
	if err != nil {
		pc.Logger.Warn("testimonials query failed, serving defaults", zap.Error(err))
		return defaultTestimonials()
	}
	if len(testimonials) == 0 {
		return defaultTestimonials()
	}
	return testimonials
}

func (pc *PortfolioController) GetTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, pc.fetchTestimonials(c.Request.Context()))
}

func (pc *PortfolioController) CreateTestimonial(c *gin.Context) {
	var in models.TestimonialCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := &models.Testimonial{
		ID:      uuid.NewString(),
		Name:    in.Name,
		Role:    in.Role,
		Avatar:  in.Avatar,
		Content: in.Content,
		Rating:  in.Rating,
	}
	if err := pc.Content.InsertTestimonial(c.Request.Context(), t); err != nil {
		pc.Logger.Error("error creating testimonial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (pc *PortfolioController) DeleteTestimonial(c *gin.Context) {
	pc.deleteByID(c, "Testimonial", pc.Content.DeleteTestimonial)
}

// --- skills ---

func (pc *PortfolioController) fetchSkills(ctx context.Context) []models.Skill {
	skills, err := pc.Content.ListSkills(ctx)
	if err != nil {
		pc.Logger.Warn("skills query failed, serving defaults", zap.Error(err))
		return defaultSkills()
	}
	if len(skills) == 0 {
		return defaultSkills()
	}
	return skills
}

func (pc *PortfolioController) GetSkills(c *gin.Context) {
	c.JSON(http.StatusOK, pc.fetchSkills(c.Request.Context()))
}

func (pc *PortfolioController) CreateSkill(c *gin.Context) {
	var in models.SkillCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	skill := &models.Skill{ID: uuid.NewString(), Name: in.Name, Level: in.Level}
	if err := pc.Content.InsertSkill(c.Request.Context(), skill); err != nil {
		pc.Logger.Error("error creating skill", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, skill)
}

// --- nav links ---

func (pc *PortfolioController) fetchNavLinks(ctx context.Context) []models.NavLink {
	links, err := pc.Content.ListNavLinks(ctx)
	if err != nil {
		pc.Logger.Warn("nav links query failed, serving defaults", zap.Error(err))
		return defaultNavLinks()
	}
	return links
}

// GetNavLinks serves an empty list when the collection is empty but the
// store is healthy; defaults only cover store failure.
func (pc *PortfolioController) GetNavLinks(c *gin.Context) {
	c.JSON(http.StatusOK, pc.fetchNavLinks(c.Request.Context()))
}

func (pc *PortfolioController) CreateNavLink(c *gin.Context) {
	var in models.NavLinkCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	link := &models.NavLink{ID: uuid.NewString(), Label: in.Label, Href: in.Href, Order: in.Order}
	if err := pc.Content.InsertNavLink(c.Request.Context(), link); err != nil {
		pc.Logger.Error("error creating nav link", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, link)
}

func (pc *PortfolioController) DeleteNavLink(c *gin.Context) {
	pc.deleteByID(c, "Nav link", pc.Content.DeleteNavLink)
}

// --- bootstrap ---

// Bootstrap returns every home-page section in one response. Sections are
// fetched concurrently and each falls back to its default independently.
func (pc *PortfolioController) Bootstrap(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		personalInfo *models.PersonalInfo
		stats        []models.Stat
		navLinks     []models.NavLink
		services     []models.Service
		projects     []models.Project
		products     []models.Product
		testimonials []models.Testimonial
		skills       []models.Skill
	)

	var wg sync.WaitGroup
	wg.Add(8)
	go func() { defer wg.Done(); personalInfo = pc.fetchPersonalInfo(ctx) }()
	go func() { defer wg.Done(); stats = pc.fetchStats(ctx) }()
	go func() { defer wg.Done(); navLinks = pc.fetchNavLinks(ctx) }()
	go func() { defer wg.Done(); services = pc.fetchServices(ctx) }()
	go func() { defer wg.Done(); projects = pc.fetchProjects(ctx) }()
	go func() { defer wg.Done(); products = pc.fetchProducts(ctx) }()
	go func() { defer wg.Done(); testimonials = pc.fetchTestimonials(ctx) }()
	go func() { defer wg.Done(); skills = pc.fetchSkills(ctx) }()
	wg.Wait()

	c.Header("Cache-Control", "public, max-age=60")
	c.JSON(http.StatusOK, gin.H{
		"personalInfo": personalInfo,
		"stats":        stats,
		"navLinks":     navLinks,
		"services":     services,
		"projects":     projects,
		"products":     products,
		"testimonials": testimonials,
		"skills":       skills,
	})
}

// --- status checks ---

func (pc *PortfolioController) CreateStatusCheck(c *gin.Context) {
	var in models.StatusCheckCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: in.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	// Best effort: the ping is returned even when persistence fails.
	if err := pc.Content.InsertStatusCheck(c.Request.Context(), check); err != nil {
		pc.Logger.Warn("status check insert failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, check)
}

func (pc *PortfolioController) GetStatusChecks(c *gin.Context) {
	checks, err := pc.Content.ListStatusChecks(c.Request.Context())
	if err != nil {
		pc.Logger.Warn("status checks query failed", zap.Error(err))
		c.JSON(http.StatusOK, []models.StatusCheck{})
		return
	}
	c.JSON(http.StatusOK, checks)
}

// deleteByID runs a repository delete and translates the result into the
// shared 404/500/200 shape.
func (pc *PortfolioController) deleteByID(c *gin.Context, kind string, del func(context.Context, string) (int64, error)) {
	deleted, err := del(c.Request.Context(), c.Param("id"))
	if err != nil {
		pc.Logger.Error("error deleting "+kind, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": kind + " not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": kind + " deleted successfully"})
}
