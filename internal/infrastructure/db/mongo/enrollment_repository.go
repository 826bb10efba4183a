package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aulahub/course-platform/internal/core/domain"
)

const collectionEnrollments = "enrollments"

// EnrollmentRepository implements ports.EnrollmentRepository. The unique
// compound index on (aluno, curso) is the single source of truth for the
// at-most-one-enrollment invariant; a violated insert surfaces as
// domain.ErrDuplicateEnrollment.
type EnrollmentRepository struct {
	coll *mongo.Collection
}

func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepository {
	return &EnrollmentRepository{coll: db.Collection(collectionEnrollments)}
}

type mongoEnrollment struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Aluno primitive.ObjectID `bson:"aluno"`
	Curso primitive.ObjectID `bson:"curso"`
	Data  time.Time          `bson:"data"`
}

func (me mongoEnrollment) toDomain() *domain.Enrollment {
	return &domain.Enrollment{
		ID:      me.ID.Hex(),
		AlunoID: me.Aluno.Hex(),
		CursoID: me.Curso.Hex(),
		Data:    me.Data,
	}
}

func enrollmentPair(alunoID, cursoID string) (primitive.ObjectID, primitive.ObjectID, error) {
	aluno, err := primitive.ObjectIDFromHex(alunoID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, domain.ErrEnrollmentNotFound
	}
	curso, err := primitive.ObjectIDFromHex(cursoID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, domain.ErrEnrollmentNotFound
	}
	return aluno, curso, nil
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	aluno, err := primitive.ObjectIDFromHex(enrollment.AlunoID)
	if err != nil {
		return nil, fmt.Errorf("invalid student id: %w", err)
	}
	curso, err := primitive.ObjectIDFromHex(enrollment.CursoID)
	if err != nil {
		return nil, fmt.Errorf("invalid course id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoEnrollment{Aluno: aluno, Curso: curso, Data: enrollment.Data}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEnrollment
		}
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}

	created := *enrollment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, alunoID, cursoID string) error {
	aluno, curso, err := enrollmentPair(alunoID, cursoID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"aluno": aluno, "curso": curso})
	if err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}

func (r *EnrollmentRepository) Exists(ctx context.Context, alunoID, cursoID string) (bool, error) {
	aluno, curso, err := enrollmentPair(alunoID, cursoID)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"aluno": aluno, "curso": curso})
	if err != nil {
		return false, fmt.Errorf("count enrollments: %w", err)
	}
	return n > 0, nil
}

func (r *EnrollmentRepository) ListByStudent(ctx context.Context, alunoID string) ([]*domain.Enrollment, error) {
	aluno, err := primitive.ObjectIDFromHex(alunoID)
	if err != nil {
		return nil, nil
	}
	return r.list(ctx, bson.M{"aluno": aluno})
}

func (r *EnrollmentRepository) ListByCourse(ctx context.Context, cursoID string) ([]*domain.Enrollment, error) {
	curso, err := primitive.ObjectIDFromHex(cursoID)
	if err != nil {
		return nil, nil
	}
	return r.list(ctx, bson.M{"curso": curso})
}

func (r *EnrollmentRepository) list(ctx context.Context, filter bson.M) ([]*domain.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Enrollment
	for cursor.Next(ctx) {
		var me mongoEnrollment
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode enrollment: %w", err)
		}
		out = append(out, me.toDomain())
	}
	return out, cursor.Err()
}

// EnsureIndexes creates the unique (aluno, curso) index plus the course
// roster lookup index.
func (r *EnrollmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "aluno", Value: 1}, {Key: "curso", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "curso", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
