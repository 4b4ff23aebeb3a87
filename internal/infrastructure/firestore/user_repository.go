package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

const usersCollection = "users"

// UserRepo implementación Firestore de repository.UserRepository.
type UserRepo struct {
	client *Client
}

var _ repository.UserRepository = (*UserRepo)(nil)

// NewUserRepo construye el repositorio.
func NewUserRepo(client *Client) *UserRepo {
	return &UserRepo{client: client}
}

func (r *UserRepo) col() *firestore.CollectionRef {
	return r.client.FS.Collection(usersCollection)
}

// Create persiste un usuario nuevo y devuelve el ID del documento.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (string, error) {
	if user == nil {
		return "", errors.New("usuario nil")
	}
	ref := r.col().NewDoc()
	doc := map[string]any{
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
		"name":         user.Name,
		"role":         user.Role,
		"status":       user.Status,
		"createdAt":    user.CreatedAt,
		"updatedAt":    user.UpdatedAt,
	}
	if _, err := ref.Set(ctx, doc); err != nil {
		return "", err
	}
	return ref.ID, nil
}

// GetByID obtiene un usuario por ID de documento. Devuelve nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return docToUser(snap), nil
}

// FindByEmail obtiene un usuario por email. Devuelve nil si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	it := r.col().Where("email", "==", email).Limit(1).Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return docToUser(doc), nil
}

func docToUser(doc *firestore.DocumentSnapshot) *entity.User {
	data := doc.Data()
	if data == nil {
		return &entity.User{ID: doc.Ref.ID}
	}
	return &entity.User{
		ID:           doc.Ref.ID,
		Email:        getStr(data, "email"),
		PasswordHash: getStr(data, "passwordHash"),
		Name:         getStr(data, "name"),
		Role:         getStr(data, "role"),
		Status:       getStr(data, "status"),
		CreatedAt:    getTime(data, "createdAt"),
		UpdatedAt:    getTime(data, "updatedAt"),
	}
}
