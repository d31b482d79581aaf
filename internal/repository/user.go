package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/MentorBridge/backend/internal/dto"
	"github.com/MentorBridge/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

// publicProjection excludes the password hash from read paths. Only the
// credential lookups used for verification load it.
var publicProjection = bson.M{"password": 0}

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index plus the role and isActive
// indexes used by discovery queries.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

// Create inserts a new user document and backfills the generated ID.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// GetByID looks up a user regardless of activity state. Returns nil when no
// document matches.
func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, publicProjection)
}

// GetActiveByID looks up an active user, password excluded.
func (r *UserRepository) GetActiveByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id, "isActive": true}, publicProjection)
}

// GetByIDWithPassword loads the user including the stored hash, for
// current-password verification.
func (r *UserRepository) GetByIDWithPassword(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, nil)
}

// GetByEmail looks up a user by email across active and inactive records.
// Used for the registration uniqueness check.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, publicProjection)
}

// GetActiveByEmailWithPassword loads an active user including the stored
// hash, for login verification.
func (r *UserRepository) GetActiveByEmailWithPassword(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email, "isActive": true}, nil)
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M, projection bson.M) (*model.User, error) {
	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var user model.User
	err := r.collection.FindOne(ctx, filter, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// UpdateFields applies a partial $set update and returns the updated
// document, password excluded. Fields not present in the update are left
// untouched.
func (r *UserRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.User, error) {
	fields["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(publicProjection)

	var user model.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

// UpdateProfile applies partial profile update semantics: only fields
// present in the request are written. Expertise is written only when the
// caller allows it (mentor-role accounts).
func (r *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, req *dto.UpdateProfileRequest, allowExpertise bool) (*model.User, error) {
	fields := bson.M{}
	if req.Name != nil && *req.Name != "" {
		fields["name"] = *req.Name
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.ProfileImage != nil {
		fields["profileImage"] = *req.ProfileImage
	}
	if req.Expertise != nil && allowExpertise {
		fields["expertise"] = req.Expertise
	}
	return r.UpdateFields(ctx, id, fields)
}

// UpdatePassword stores a new password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	update := bson.M{"$set": bson.M{
		"password":  passwordHash,
		"updatedAt": time.Now().UTC(),
	}}
	if _, err := r.collection.UpdateByID(ctx, id, update); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// RecordLogin stamps lastLogin and increments loginCount in one atomic
// document write.
func (r *UserRepository) RecordLogin(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$set": bson.M{"lastLogin": time.Now().UTC()},
		"$inc": bson.M{"loginCount": 1},
	}
	if _, err := r.collection.UpdateByID(ctx, id, update); err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}
	return nil
}

// Deactivate flips isActive to false. The record is kept; re-running the
// operation on an inactive account is a no-op.
func (r *UserRepository) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"isActive":  false,
		"updatedAt": time.Now().UTC(),
	}}
	if _, err := r.collection.UpdateByID(ctx, id, update); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}

// FindByRole lists active users of a role, newest first, optionally filtered
// by an expertise substring.
func (r *UserRepository) FindByRole(ctx context.Context, role, expertise string, limit, offset int) ([]model.User, int64, error) {
	filter := bson.M{"role": role, "isActive": true}
	if expertise != "" {
		filter["expertise"] = bson.M{"$regex": escapeRegex(expertise), "$options": "i"}
	}
	return r.findPage(ctx, filter, limit, offset)
}

// Search matches an escaped, case-insensitive substring against name, email
// and expertise of active users, optionally restricted to a role.
func (r *UserRepository) Search(ctx context.Context, query, role string, limit, offset int) ([]model.User, int64, error) {
	pattern := escapeRegex(query)
	filter := bson.M{
		"isActive": true,
		"$or": []bson.M{
			{"name": bson.M{"$regex": pattern, "$options": "i"}},
			{"email": bson.M{"$regex": pattern, "$options": "i"}},
			{"expertise": bson.M{"$regex": pattern, "$options": "i"}},
		},
	}
	if role != "" {
		filter["role"] = role
	}
	return r.findPage(ctx, filter, limit, offset)
}

func (r *UserRepository) findPage(ctx context.Context, filter bson.M, limit, offset int) ([]model.User, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	opts := options.Find().
		SetProjection(publicProjection).
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find users: %w", err)
	}
	defer cur.Close(ctx)

	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, total, nil
}

// CountActive counts discovery-visible users.
func (r *UserRepository) CountActive(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"isActive": true})
}

// CountActiveByRole counts discovery-visible users of a role.
func (r *UserRepository) CountActiveByRole(ctx context.Context, role string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"role": role, "isActive": true})
}

// CountRegisteredSince counts active users created at or after the cutoff.
func (r *UserRepository) CountRegisteredSince(ctx context.Context, since time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"isActive":  true,
		"createdAt": bson.M{"$gte": since},
	})
}

// escapeRegex neutralizes regex metacharacters in user-supplied search
// input before it reaches the store.
func escapeRegex(input string) string {
	return regexp.QuoteMeta(input)
}
