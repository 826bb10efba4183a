package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aulahub/course-platform/internal/core/domain"
)

const collectionCourses = "courses"

// CourseRepository implements ports.CourseRepository over the courses collection.
type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(collectionCourses)}
}

// mongoLesson stores the object-storage key under "url", matching the
// original collection layout. It is a key, not an address.
type mongoLesson struct {
	Titulo string `bson:"titulo"`
	URL    string `bson:"url"`
}

type mongoCourse struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Titulo    string             `bson:"titulo"`
	Descricao string             `bson:"descricao"`
	Instrutor primitive.ObjectID `bson:"instrutor"`
	Aulas     []mongoLesson      `bson:"aulas"`
	CriadoEm  time.Time          `bson:"criadoEm"`
}

func (mc mongoCourse) toDomain() *domain.Course {
	aulas := make([]domain.Lesson, len(mc.Aulas))
	for i, a := range mc.Aulas {
		aulas[i] = domain.Lesson{Titulo: a.Titulo, StorageKey: a.URL}
	}
	return &domain.Course{
		ID:          mc.ID.Hex(),
		Titulo:      mc.Titulo,
		Descricao:   mc.Descricao,
		InstrutorID: mc.Instrutor.Hex(),
		Aulas:       aulas,
		CriadoEm:    mc.CriadoEm,
	}
}

func lessonsToDocs(aulas []domain.Lesson) []mongoLesson {
	docs := make([]mongoLesson, len(aulas))
	for i, a := range aulas {
		docs[i] = mongoLesson{Titulo: a.Titulo, URL: a.StorageKey}
	}
	return docs
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	instrutor, err := primitive.ObjectIDFromHex(course.InstrutorID)
	if err != nil {
		return nil, fmt.Errorf("invalid instructor id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCourse{
		Titulo:    course.Titulo,
		Descricao: course.Descricao,
		Instrutor: instrutor,
		Aulas:     lessonsToDocs(course.Aulas),
		CriadoEm:  course.CriadoEm,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}

	created := *course
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCourse
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CourseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "criadoEm", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Course
	for cursor.Next(ctx) {
		var mc mongoCourse
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		out = append(out, mc.toDomain())
	}
	return out, cursor.Err()
}

func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) error {
	oid, err := primitive.ObjectIDFromHex(course.ID)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"titulo":    course.Titulo,
		"descricao": course.Descricao,
		"aulas":     lessonsToDocs(course.Aulas),
	}})
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

// EnsureIndexes creates the instructor lookup index.
func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "instrutor", Value: 1}},
	})
	return err
}
