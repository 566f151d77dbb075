package repository

import (
	"context"
	"testing"

	apperrors "conserje/internal/errors"
	"conserje/internal/testutil"
)

func TestRoomTypeRepository_FindAll(t *testing.T) {
	fake := testutil.NewFakeHotelAPI(t)
	fake.RoomTypes = []map[string]interface{}{
		{"id": 1, "name": "Simple", "pricePerNight": 60.0, "maxAdults": 1, "maxChildren": 0},
		{"id": 2, "name": "Double", "pricePerNight": 100.0, "maxAdults": 2, "maxChildren": 1},
	}

	repo := NewHTTPRoomTypeRepository(fake.Client())

	roomTypes, err := repo.FindAll(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roomTypes) != 2 {
		t.Fatalf("expected 2 room types, got %d", len(roomTypes))
	}
	if roomTypes[1].Name != "Double" || roomTypes[1].PricePerNight != 100 || roomTypes[1].MaxChildren != 1 {
		t.Errorf("unexpected room type: %+v", roomTypes[1])
	}
}

func TestRoomTypeRepository_FindAll_RemoteFailure(t *testing.T) {
	fake := testutil.NewFakeHotelAPI(t)
	fake.FailRoomTypes = true

	repo := NewHTTPRoomTypeRepository(fake.Client())

	_, err := repo.FindAll(context.Background())

	if _, ok := apperrors.IsCatalogUnavailableError(err); !ok {
		t.Fatalf("expected CatalogUnavailableError, got %v", err)
	}
}

func TestRoomTypeRepository_FindAll_MalformedRecord(t *testing.T) {
	fake := testutil.NewFakeHotelAPI(t)
	fake.RoomTypes = []map[string]interface{}{
		{"id": 0, "name": "", "pricePerNight": -5.0, "maxAdults": 1, "maxChildren": 0},
	}

	repo := NewHTTPRoomTypeRepository(fake.Client())

	_, err := repo.FindAll(context.Background())

	if _, ok := apperrors.IsCatalogUnavailableError(err); !ok {
		t.Fatalf("expected CatalogUnavailableError for malformed data, got %v", err)
	}
}
