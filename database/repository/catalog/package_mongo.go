package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"amberhall/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPackageRepo implements PackageRepository using MongoDB.
type MongoPackageRepo struct {
	coll *mongo.Collection
}

// NewMongoPackageRepo creates a new PackageRepository backed by MongoDB.
func NewMongoPackageRepo(client *mongo.Client, dbName string) PackageRepository {
	coll := client.Database(dbName).Collection("packages")
	repo := &MongoPackageRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create package indexes: %v\n", err)
	}
	return repo
}

func (r *MongoPackageRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPackageRepo) Create(pkg *models.Package) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

func (r *MongoPackageRepo) GetByID(id string) (*models.Package, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pkg models.Package
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch package with id %s: %w", id, err)
	}
	return &pkg, nil
}

func (r *MongoPackageRepo) GetAll() ([]models.Package, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []models.Package
	for cursor.Next(ctx) {
		var p models.Package
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode package: %w", err)
		}
		packages = append(packages, p)
	}
	return packages, nil
}

func (r *MongoPackageRepo) Update(pkg *models.Package) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pkg.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": pkg.ID}, bson.M{"$set": pkg})
	if err != nil {
		return fmt.Errorf("failed to update package with id %s: %w", pkg.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoPackageRepo) Delete(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete package with id %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
