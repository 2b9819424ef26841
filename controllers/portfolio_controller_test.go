package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeContentRepo is an in-memory ContentRepository. Setting err makes
// every call fail, which is how the degraded-store paths are exercised.
type fakeContentRepo struct {
	err error

	personalInfo *models.PersonalInfo
	stats        []models.Stat
	services     []models.Service
	projects     []models.Project
	products     []models.Product
	testimonials []models.Testimonial
	skills       []models.Skill
	navLinks     []models.NavLink
	contacts     []models.ContactMessage
	statusChecks []models.StatusCheck

	deleteCount int64
}

func (f *fakeContentRepo) FindPersonalInfo(ctx context.Context) (*models.PersonalInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.personalInfo == nil {
		return nil, repository.ErrNotFound
	}
	return f.personalInfo, nil
}

func (f *fakeContentRepo) InsertPersonalInfo(ctx context.Context, info *models.PersonalInfo) error {
	if f.err != nil {
		return f.err
	}
	f.personalInfo = info
	return nil
}

func (f *fakeContentRepo) UpdatePersonalInfo(ctx context.Context, upd *models.PersonalInfoUpdate) (*models.PersonalInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	if upd.Name != nil {
		f.personalInfo.Name = *upd.Name
	}
	if upd.Email != nil {
		f.personalInfo.Email = *upd.Email
	}
	return f.personalInfo, nil
}

func (f *fakeContentRepo) ListStats(ctx context.Context) ([]models.Stat, error) {
	return f.stats, f.err
}
func (f *fakeContentRepo) InsertStat(ctx context.Context, stat *models.Stat) error {
	f.stats = append(f.stats, *stat)
	return f.err
}
func (f *fakeContentRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	return f.services, f.err
}
func (f *fakeContentRepo) InsertService(ctx context.Context, svc *models.Service) error {
	f.services = append(f.services, *svc)
	return f.err
}
func (f *fakeContentRepo) DeleteService(ctx context.Context, id string) (int64, error) {
	return f.deleteCount, f.err
}
func (f *fakeContentRepo) ListProjects(ctx context.Context) ([]models.Project, error) {
	return f.projects, f.err
}
func (f *fakeContentRepo) FindProject(ctx context.Context, id string) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.projects {
		if f.projects[i].ID == id {
			return &f.projects[i], nil
		}
	}
	return nil, repository.ErrNotFound
}
func (f *fakeContentRepo) InsertProject(ctx context.Context, project *models.Project) error {
	f.projects = append(f.projects, *project)
	return f.err
}
func (f *fakeContentRepo) DeleteProject(ctx context.Context, id string) (int64, error) {
	return f.deleteCount, f.err
}
func (f *fakeContentRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}
func (f *fakeContentRepo) InsertProduct(ctx context.Context, product *models.Product) error {
	f.products = append(f.products, *product)
	return f.err
}
func (f *fakeContentRepo) DeleteProduct(ctx context.Context, id string) (int64, error) {
	return f.deleteCount, f.err
}
func (f *fakeContentRepo) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return f.testimonials, f.err
}
func (f *fakeContentRepo) InsertTestimonial(ctx context.Context, tm *models.Testimonial) error {
	f.testimonials = append(f.testimonials, *tm)
	return f.err
}
func (f *fakeContentRepo) DeleteTestimonial(ctx context.Context, id string) (int64, error) {
	return f.deleteCount, f.err
}
func (f *fakeContentRepo) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return f.skills, f.err
}
func (f *fakeContentRepo) InsertSkill(ctx context.Context, skill *models.Skill) error {
	f.skills = append(f.skills, *skill)
	return f.err
}
func (f *fakeContentRepo) ListNavLinks(ctx context.Context) ([]models.NavLink, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.navLinks == nil {
		return []models.NavLink{}, nil
	}
	return f.navLinks, nil
}
func (f *fakeContentRepo) InsertNavLink(ctx context.Context, link *models.NavLink) error {
	f.navLinks = append(f.navLinks, *link)
	return f.err
}
func (f *fakeContentRepo) DeleteNavLink(ctx context.Context, id string) (int64, error) {
	return f.deleteCount, f.err
}
func (f *fakeContentRepo) InsertContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.contacts = append(f.contacts, *msg)
	return nil
}
func (f *fakeContentRepo) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return f.contacts, f.err
}
func (f *fakeContentRepo) InsertStatusCheck(ctx context.Context, check *models.StatusCheck) error {
	if f.err != nil {
		return f.err
	}
	f.statusChecks = append(f.statusChecks, *check)
	return nil
}
func (f *fakeContentRepo) ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error) {
	return f.statusChecks, f.err
}

func newPortfolioRouter(repo repository.ContentRepository) *gin.Engine {
	pc := &PortfolioController{Content: repo, Logger: zap.NewNop()}
	r := gin.New()
	r.GET("/bootstrap", pc.Bootstrap)
	r.GET("/personal-info", pc.GetPersonalInfo)
	r.PUT("/personal-info", pc.UpdatePersonalInfo)
	r.GET("/stats", pc.GetStats)
	r.POST("/stats", pc.CreateStat)
	r.GET("/projects", pc.GetProjects)
	r.GET("/projects/:id", pc.GetProject)
	r.DELETE("/projects/:id", pc.DeleteProject)
	r.GET("/nav-links", pc.GetNavLinks)
	r.POST("/status", pc.CreateStatusCheck)
	r.GET("/status", pc.GetStatusChecks)
	return r
}

func TestContentReadsDegradeToDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("store failure serves the default dataset", func(t *testing.T) {
		r := newPortfolioRouter(&fakeContentRepo{err: errors.New("mongo down")})

		w := performJSON(r, http.MethodGet, "/stats", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var stats []models.Stat
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, defaultStats(), stats)
	})

	t.Run("empty collection serves the default dataset", func(t *testing.T) {
		r := newPortfolioRouter(&fakeContentRepo{})

		w := performJSON(r, http.MethodGet, "/stats", nil)

		var stats []models.Stat
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, defaultStats(), stats)
	})

	t.Run("stored documents win over defaults", func(t *testing.T) {
		stored := []models.Stat{{ID: "s1", Value: "10+", Label: "Releases", Order: 1}}
		r := newPortfolioRouter(&fakeContentRepo{stats: stored})

		w := performJSON(r, http.MethodGet, "/stats", nil)

		var stats []models.Stat
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, stored, stats)
	})
}

func TestNavLinksEmptyVersusError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("healthy store with empty collection serves an empty list", func(t *testing.T) {
		r := newPortfolioRouter(&fakeContentRepo{})

		w := performJSON(r, http.MethodGet, "/nav-links", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("store failure serves defaults", func(t *testing.T) {
		r := newPortfolioRouter(&fakeContentRepo{err: errors.New("mongo down")})

		w := performJSON(r, http.MethodGet, "/nav-links", nil)

		var links []models.NavLink
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &links))
		assert.Equal(t, defaultNavLinks(), links)
	})
}

func TestPersonalInfoUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("first write creates a document merged with defaults", func(t *testing.T) {
		repo := &fakeContentRepo{}
		r := newPortfolioRouter(repo)

		w := performJSON(r, http.MethodPut, "/personal-info", gin.H{"name": "New Name"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, repo.personalInfo)
		assert.Equal(t, "New Name", repo.personalInfo.Name)
		// Untouched fields come from the defaults.
		assert.Equal(t, defaultPersonalInfo().Title, repo.personalInfo.Title)
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		existing := defaultPersonalInfo()
		existing.ID = "pi-1"
		repo := &fakeContentRepo{personalInfo: existing}
		r := newPortfolioRouter(repo)

		w := performJSON(r, http.MethodPut, "/personal-info", gin.H{"email": "new@example.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "new@example.com", repo.personalInfo.Email)
		assert.Equal(t, defaultPersonalInfo().Name, repo.personalInfo.Name)
	})
}

func TestProjectLookupAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get by id", func(t *testing.T) {
		repo := &fakeContentRepo{projects: []models.Project{{ID: "proj-1", Title: "Site"}}}
		r := newPortfolioRouter(repo)

		w := performJSON(r, http.MethodGet, "/projects/proj-1", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = performJSON(r, http.MethodGet, "/projects/ghost", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete miss - 404", func(t *testing.T) {
		r := newPortfolioRouter(&fakeContentRepo{deleteCount: 0})
		w := performJSON(r, http.MethodDelete, "/projects/ghost", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete hit", func(t *testing.T) {
		r := newPortfolioRouter(&fakeContentRepo{deleteCount: 1})
		w := performJSON(r, http.MethodDelete, "/projects/proj-1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestBootstrap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newPortfolioRouter(&fakeContentRepo{err: errors.New("mongo down")})

	w := performJSON(r, http.MethodGet, "/bootstrap", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=60", w.Header().Get("Cache-Control"))

	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, key := range []string{"personalInfo", "stats", "navLinks", "services", "projects", "products", "testimonials", "skills"} {
		assert.Contains(t, body, key)
	}
}

func TestStatusChecks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ping is returned even when persistence fails", func(t *testing.T) {
		r := newPortfolioRouter(&fakeContentRepo{err: errors.New("mongo down")})

		w := performJSON(r, http.MethodPost, "/status", gin.H{"client_name": "probe"})

		assert.Equal(t, http.StatusOK, w.Code)
		var check models.StatusCheck
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
		assert.Equal(t, "probe", check.ClientName)
		assert.NotEmpty(t, check.ID)
	})

	t.Run("list degrades to empty", func(t *testing.T) {
		r := newPortfolioRouter(&fakeContentRepo{err: errors.New("mongo down")})

		w := performJSON(r, http.MethodGet, "/status", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}
