package models

type Socials struct {
	Github   string `bson:"github" json:"github"`
	Linkedin string `bson:"linkedin" json:"linkedin"`
	Twitter  string `bson:"twitter" json:"twitter"`
	Dribbble string `bson:"dribbble" json:"dribbble"`
}

type PersonalInfo struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Nickname    string  `bson:"nickname" json:"nickname"`
	Title       string  `bson:"title" json:"title"`
	Tagline     string  `bson:"tagline" json:"tagline"`
	Description string  `bson:"description" json:"description"`
	Email       string  `bson:"email" json:"email"`
	Phone       string  `bson:"phone" json:"phone"`
	Location    string  `bson:"location" json:"location"`
	Avatar      string  `bson:"avatar" json:"avatar"`
	Resume      string  `bson:"resume" json:"resume"`
	Socials     Socials `bson:"socials" json:"socials"`
}

// PersonalInfoUpdate is a partial update; nil fields are left untouched.
type PersonalInfoUpdate struct {
	Name        *string  `json:"name"`
	Nickname    *string  `json:"nickname"`
	Title       *string  `json:"title"`
	Tagline     *string  `json:"tagline"`
	Description *string  `json:"description"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	Phone       *string  `json:"phone"`
	Location    *string  `json:"location"`
	Avatar      *string  `json:"avatar"`
	Resume      *string  `json:"resume"`
	Socials     *Socials `json:"socials"`
}

type Stat struct {
	ID    string `bson:"id" json:"id"`
	Value string `bson:"value" json:"value"`
	Label string `bson:"label" json:"label"`
	Order int    `bson:"order" json:"order"`
}

type StatCreate struct {
	Value string `json:"value" binding:"required"`
	Label string `json:"label" binding:"required"`
	Order int    `json:"order"`
}

type Service struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"`
}

type ServiceCreate struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
}

type Project struct {
	ID           string   `bson:"id" json:"id"`
	Title        string   `bson:"title" json:"title"`
	Description  string   `bson:"description" json:"description"`
	Image        string   `bson:"image" json:"image"`
	Category     string   `bson:"category" json:"category"`
	Technologies []string `bson:"technologies" json:"technologies"`
	Link         string   `bson:"link" json:"link"`
	Github       string   `bson:"github" json:"github"`
}

type ProjectCreate struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Image        string   `json:"image" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Technologies []string `json:"technologies" binding:"required"`
	Link         string   `json:"link"`
	Github       string   `json:"github"`
}

type Product struct {
	ID            string  `bson:"id" json:"id"`
	Title         string  `bson:"title" json:"title"`
	Description   string  `bson:"description" json:"description"`
	Price         float64 `bson:"price" json:"price"`
	OriginalPrice float64 `bson:"originalPrice" json:"originalPrice"`
	Image         string  `bson:"image" json:"image"`
	Category      string  `bson:"category" json:"category"`
	Rating        float64 `bson:"rating" json:"rating"`
	Downloads     int     `bson:"downloads" json:"downloads"`
}

type ProductCreate struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
	OriginalPrice float64 `json:"originalPrice" binding:"required"`
	Image         string  `json:"image" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Rating        float64 `json:"rating"`
	Downloads     int     `json:"downloads"`
}

type Testimonial struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Role    string `bson:"role" json:"role"`
	Avatar  string `bson:"avatar" json:"avatar"`
	Content string `bson:"content" json:"content"`
	Rating  int    `bson:"rating" json:"rating"`
}

type TestimonialCreate struct {
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role" binding:"required"`
	Avatar  string `json:"avatar" binding:"required"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

type Skill struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Level int    `bson:"level" json:"level"`
}

type SkillCreate struct {
	Name  string `json:"name" binding:"required"`
	Level int    `json:"level" binding:"min=0,max=100"`
}

type NavLink struct {
	ID    string `bson:"id" json:"id"`
	Label string `bson:"label" json:"label"`
	Href  string `bson:"href" json:"href"`
	Order int    `bson:"order" json:"order"`
}

type NavLinkCreate struct {
	Label string `json:"label" binding:"required"`
	Href  string `json:"href" binding:"required"`
	Order int    `json:"order"`
}
