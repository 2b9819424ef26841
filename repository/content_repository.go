package repository

import (
	"context"
	"errors"

	"portfolio-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per site section.
const (
	collPersonalInfo = "personal_info"
	collStats        = "stats"
	collServices     = "services"
	collProjects     = "projects"
	collProducts     = "products"
	collTestimonials = "testimonials"
	collSkills       = "skills"
	collNavLinks     = "nav_links"
	collContact      = "contact_messages"
	collStatusChecks = "status_checks"
)

type MongoContentRepository struct {
	db *mongo.Database
}

func NewMongoContentRepository(db *mongo.Database) *MongoContentRepository {
	return &MongoContentRepository{db: db}
}

func (r *MongoContentRepository) list(ctx context.Context, coll string, opts *options.FindOptions, out interface{}) error {
	cursor, err := r.db.Collection(coll).Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

func (r *MongoContentRepository) insert(ctx context.Context, coll string, doc interface{}) error {
	_, err := r.db.Collection(coll).InsertOne(ctx, doc)
	return err
}

func (r *MongoContentRepository) deleteByID(ctx context.Context, coll, id string) (int64, error) {
	result, err := r.db.Collection(coll).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *MongoContentRepository) FindPersonalInfo(ctx context.Context) (*models.PersonalInfo, error) {
	var info models.PersonalInfo
	err := r.db.Collection(collPersonalInfo).FindOne(ctx, bson.M{}).Decode(&info)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *MongoContentRepository) InsertPersonalInfo(ctx context.Context, info *models.PersonalInfo) error {
	return r.insert(ctx, collPersonalInfo, info)
}

func (r *MongoContentRepository) UpdatePersonalInfo(ctx context.Context, upd *models.PersonalInfoUpdate) (*models.PersonalInfo, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Nickname != nil {
		set["nickname"] = *upd.Nickname
	}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Tagline != nil {
		set["tagline"] = *upd.Tagline
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Avatar != nil {
		set["avatar"] = *upd.Avatar
	}
	if upd.Resume != nil {
		set["resume"] = *upd.Resume
	}
	if upd.Socials != nil {
		set["socials"] = *upd.Socials
	}

	if len(set) > 0 {
		if _, err := r.db.Collection(collPersonalInfo).UpdateOne(ctx, bson.M{}, bson.M{"$set": set}); err != nil {
			return nil, err
		}
	}
	return r.FindPersonalInfo(ctx)
}

func (r *MongoContentRepository) ListStats(ctx context.Context) ([]models.Stat, error) {
	stats := []models.Stat{}
	err := r.list(ctx, collStats, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}), &stats)
	return stats, err
}

func (r *MongoContentRepository) InsertStat(ctx context.Context, stat *models.Stat) error {
	return r.insert(ctx, collStats, stat)
}

func (r *MongoContentRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	services := []models.Service{}
	err := r.list(ctx, collServices, options.Find(), &services)
	return services, err
}

func (r *MongoContentRepository) InsertService(ctx context.Context, svc *models.Service) error {
	return r.insert(ctx, collServices, svc)
}

func (r *MongoContentRepository) DeleteService(ctx context.Context, id string) (int64, error) {
	return r.deleteByID(ctx, collServices, id)
}

func (r *MongoContentRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	err := r.list(ctx, collProjects, options.Find(), &projects)
	return projects, err
}

func (r *MongoContentRepository) FindProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.Collection(collProjects).FindOne(ctx, bson.M{"id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *MongoContentRepository) InsertProject(ctx context.Context, project *models.Project) error {
	return r.insert(ctx, collProjects, project)
}

func (r *MongoContentRepository) DeleteProject(ctx context.Context, id string) (int64, error) {
	return r.deleteByID(ctx, collProjects, id)
}

func (r *MongoContentRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := r.list(ctx, collProducts, options.Find(), &products)
	return products, err
}

func (r *MongoContentRepository) InsertProduct(ctx context.Context, product *models.Product) error {
	return r.insert(ctx, collProducts, product)
}

func (r *MongoContentRepository) DeleteProduct(ctx context.Context, id string) (int64, error) {
	return r.deleteByID(ctx, collProducts, id)
}

func (r *MongoContentRepository) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials := []models.Testimonial{}
	err := r.list(ctx, collTestimonials, options.Find(), &testimonials)
	return testimonials, err
}

func (r *MongoContentRepository) InsertTestimonial(ctx context.Context, t *models.Testimonial) error {
	return r.insert(ctx, collTestimonials, t)
}

func (r *MongoContentRepository) DeleteTestimonial(ctx context.Context, id string) (int64, error) {
	return r.deleteByID(ctx, collTestimonials, id)
}

func (r *MongoContentRepository) ListSkills(ctx context.Context) ([]models.Skill, error) {
	skills := []models.Skill{}
	err := r.list(ctx, collSkills, options.Find(), &skills)
	return skills, err
}

func (r *MongoContentRepository) InsertSkill(ctx context.Context, skill *models.Skill) error {
	return r.insert(ctx, collSkills, skill)
}

func (r *MongoContentRepository) ListNavLinks(ctx context.Context) ([]models.NavLink, error) {
	links := []models.NavLink{}
	err := r.list(ctx, collNavLinks, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}), &links)
	return links, err
}

func (r *MongoContentRepository) InsertNavLink(ctx context.Context, link *models.NavLink) error {
	return r.insert(ctx, collNavLinks, link)
}

func (r *MongoContentRepository) DeleteNavLink(ctx context.Context, id string) (int64, error) {
	return r.deleteByID(ctx, collNavLinks, id)
}

func (r *MongoContentRepository) InsertContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	return r.insert(ctx, collContact, msg)
}

func (r *MongoContentRepository) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(100)
	err := r.list(ctx, collContact, opts, &messages)
	return messages, err
}

func (r *MongoContentRepository) InsertStatusCheck(ctx context.Context, check *models.StatusCheck) error {
	return r.insert(ctx, collStatusChecks, check)
}

func (r *MongoContentRepository) ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error) {
	checks := []models.StatusCheck{}
	err := r.list(ctx, collStatusChecks, options.Find().SetLimit(1000), &checks)
	return checks, err
}
