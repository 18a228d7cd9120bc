package mongo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mattjhagen/expert-umbrella/internal/core/domain"
)

const ordersCollection = "orders"

// OrderRepository persists domain-purchase orders. Status transitions use
// findOneAndUpdate with a status filter, so updates are atomic per order and
// a status can never regress, even under concurrent webhook deliveries.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(ordersCollection)}
}

// Create inserts a new order document.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, order)
	return err
}

// FindByID retrieves an order by its identifier.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByPaymentRef retrieves the order created for the given payment intent
// identifier. The payment_ref index replaces the linear scan a flat-file
// ledger would need.
func (r *OrderRepository) FindByPaymentRef(ctx context.Context, ref string) (*domain.Order, error) {
	return r.findOne(ctx, bson.M{"payment_ref": ref})
}

func (r *OrderRepository) findOne(ctx context.Context, filter bson.M) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Order
	if err := r.col.FindOne(ctx, filter).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// MarkPaid advances the pending order matching ref to paid. The status
// filter makes the operation idempotent: a replayed notification finds no
// pending order and gets domain.ErrOrderNotFound.
func (r *OrderRepository) MarkPaid(ctx context.Context, ref string, paidAt time.Time) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"payment_ref": ref, "status": domain.OrderPending}
	update := bson.M{"$set": bson.M{"status": domain.OrderPaid, "paid_at": paidAt}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o domain.Order
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// MarkRegistered advances a paid order to registered, storing the raw
// registrar response.
func (r *OrderRepository) MarkRegistered(ctx context.Context, id string, response json.RawMessage) error {
	return r.advance(ctx, id, domain.OrderPaid, bson.M{
		"status":             domain.OrderRegistered,
		"registrar_response": response,
	})
}

// MarkRegistrationFailed advances a paid order to registration_failed,
// storing the failure message.
func (r *OrderRepository) MarkRegistrationFailed(ctx context.Context, id string, errMsg string) error {
	return r.advance(ctx, id, domain.OrderPaid, bson.M{
		"status": domain.OrderRegistrationFailed,
		"error":  errMsg,
	})
}

func (r *OrderRepository) advance(ctx context.Context, id string, from domain.OrderStatus, set bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id, "status": from}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// List returns all orders keyed by order id.
func (r *OrderRepository) List(ctx context.Context) (map[string]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := make(map[string]*domain.Order)
	for cur.Next(ctx) {
		var o domain.Order
		if err := cur.Decode(&o); err != nil {
			return nil, err
		}
		orders[o.ID] = &o
	}
	return orders, cur.Err()
}

// EnsureIndexes creates the lookup indexes on the orders collection.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "payment_ref", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "domain", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
