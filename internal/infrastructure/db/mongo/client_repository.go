package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
)

const collectionClients = "clientes"

type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(collectionClients)}
}

type clientDoc struct {
	RUT          string `bson:"rut"`
	BusinessName string `bson:"razon_social"`
	Activity     string `bson:"giro,omitempty"`
	Phone        string `bson:"telefono,omitempty"`
	Email        string `bson:"email,omitempty"`
	Address      string `bson:"direccion,omitempty"`
	Commune      string `bson:"comuna,omitempty"`
	BankAccount  string `bson:"cuenta_corriente,omitempty"`
	Bank         string `bson:"banco,omitempty"`
	Notes        string `bson:"observaciones,omitempty"`
	Active       bool   `bson:"activo"`
}

func (d clientDoc) toDomain() *domain.Client {
	return &domain.Client{
		RUT:          d.RUT,
		BusinessName: d.BusinessName,
		Activity:     d.Activity,
		Phone:        d.Phone,
		Email:        d.Email,
		Address:      d.Address,
		Commune:      d.Commune,
		BankAccount:  d.BankAccount,
		Bank:         d.Bank,
		Notes:        d.Notes,
		Active:       domain.ActiveFlag(d.Active),
	}
}

func toClientDoc(c *domain.Client) clientDoc {
	return clientDoc{
		RUT:          c.RUT,
		BusinessName: c.BusinessName,
		Activity:     c.Activity,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		Commune:      c.Commune,
		BankAccount:  c.BankAccount,
		Bank:         c.Bank,
		Notes:        c.Notes,
		Active:       c.Active.Bool(),
	}
}

func (r *ClientRepository) List(ctx context.Context, status string) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	switch status {
	case "activo":
		filter["activo"] = true
	case "inactivo":
		filter["activo"] = false
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "razon_social", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	var clients []*domain.Client
	for cur.Next(ctx) {
		var d clientDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, d.toDomain())
	}
	return clients, cur.Err()
}

func (r *ClientRepository) FindByRUT(ctx context.Context, rut string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d clientDoc
	err := r.col.FindOne(ctx, bson.M{"rut": rut}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return d.toDomain(), nil
}

func (r *ClientRepository) Insert(ctx context.Context, client *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toClientDoc(client)); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"rut": client.RUT}, toClientDoc(client))
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) Deactivate(ctx context.Context, rut string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"rut": rut}, bson.M{"$set": bson.M{"activo": false}})
	if err != nil {
		return fmt.Errorf("deactivate client: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// EnsureIndexes creates the unique RUT index.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "rut", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
