package service

import (
	"context"
	"time"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/UnknownOlympus/choprest/internal/repository"
)

// EventService serves restaurant promotions.
type EventService struct {
	store repository.EventStore
}

func NewEventService(store repository.EventStore) *EventService {
	return &EventService{store: store}
}

func (es *EventService) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	return es.store.ListEvents(ctx, filter)
}

// Active returns the events of the store that are switched on and running right now.
func (es *EventService) Active(ctx context.Context, storeID int64) ([]models.Event, error) {
	now := time.Now()

	return es.store.ListEvents(ctx, models.EventFilter{StoreID: storeID, ActiveAt: &now})
}

func (es *EventService) Types(ctx context.Context, storeID int64) ([]string, error) {
	return es.store.EventTypes(ctx, storeID)
}

func (es *EventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	return es.store.GetEvent(ctx, id)
}
