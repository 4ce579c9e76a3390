package catalogRepo

import (
	"errors"
	"fmt"
	"time"

	"amberhall/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoGalleryRepo implements GalleryRepository using MongoDB.
type MongoGalleryRepo struct {
	coll *mongo.Collection
}

// NewMongoGalleryRepo creates a new GalleryRepository backed by MongoDB.
func NewMongoGalleryRepo(client *mongo.Client, dbName string) GalleryRepository {
	coll := client.Database(dbName).Collection("gallery")
	repo := &MongoGalleryRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create gallery indexes: %v\n", err)
	}
	return repo
}

func (r *MongoGalleryRepo) Create(img *models.GalleryImage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	img.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, img); err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

func (r *MongoGalleryRepo) GetByID(id string) (*models.GalleryImage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var img models.GalleryImage
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&img); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch gallery image with id %s: %w", id, err)
	}
	return &img, nil
}

func (r *MongoGalleryRepo) GetAll() ([]models.GalleryImage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve gallery images: %w", err)
	}
	defer cursor.Close(ctx)

	var images []models.GalleryImage
	for cursor.Next(ctx) {
		var img models.GalleryImage
		if err := cursor.Decode(&img); err != nil {
			return nil, fmt.Errorf("failed to decode gallery image: %w", err)
		}
		images = append(images, img)
	}
	return images, nil
}

func (r *MongoGalleryRepo) Delete(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete gallery image with id %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
