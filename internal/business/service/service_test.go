package service

import (
	"context"
	"errors"
	"testing"
	"time"

	bizdomain "github.com/bizdir/backend/internal/business/domain"
	bizrepo "github.com/bizdir/backend/internal/business/repository"
	"github.com/bizdir/backend/internal/common/clock"
	"github.com/bizdir/backend/internal/common/logger"
	"github.com/bizdir/backend/internal/common/validation"
)

type mockRepository struct {
	createFunc   func(ctx context.Context, business bizdomain.Business) error
	findByIDFunc func(ctx context.Context, id bizdomain.ID) (bizdomain.Business, error)
	findAllFunc  func(ctx context.Context) ([]bizdomain.Summary, error)
	updateFunc   func(ctx context.Context, business bizdomain.Business) (bizdomain.Business, error)
	deleteFunc   func(ctx context.Context, id bizdomain.ID) error
}

func (m *mockRepository) Create(ctx context.Context, business bizdomain.Business) error {
	return m.createFunc(ctx, business)
}

func (m *mockRepository) FindByID(ctx context.Context, id bizdomain.ID) (bizdomain.Business, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockRepository) FindAll(ctx context.Context) ([]bizdomain.Summary, error) {
	return m.findAllFunc(ctx)
}

func (m *mockRepository) Update(ctx context.Context, business bizdomain.Business) (bizdomain.Business, error) {
	return m.updateFunc(ctx, business)
}

func (m *mockRepository) Delete(ctx context.Context, id bizdomain.ID) error {
	return m.deleteFunc(ctx, id)
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	return m.newIDFunc()
}

const testBusinessID = "507f1f77bcf86cd799439011"

func setupBusinessService(t *testing.T) (*BusinessService, *mockRepository, *clock.MockClock) {
	_ = t
	repo := &mockRepository{}
	mockClock := clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	gen := &mockIDGenerator{newIDFunc: func() (string, error) { return testBusinessID, nil }}
	log, _ := logger.New("", "test", "info")

	svc := NewBusinessService(repo, validation.New(), gen, mockClock, log)
	return svc, repo, mockClock
}

func validInput() BusinessInput {
	return BusinessInput{
		Name:    "Corner Bakery",
		Address: "12 Main Street",
		Phone:   "555-0101",
	}
}

func TestBusinessService_Create_Success(t *testing.T) {
	svc, repo, mockClock := setupBusinessService(t)

	var created bizdomain.Business
	repo.createFunc = func(ctx context.Context, business bizdomain.Business) error {
		created = business
		return nil
	}

	business, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if business.ID != bizdomain.ID(testBusinessID) {
		t.Errorf("expected generated id %s, got %s", testBusinessID, business.ID)
	}
	if !business.AddedOn.Equal(mockClock.Now()) {
		t.Errorf("expected addedOn %v, got %v", mockClock.Now(), business.AddedOn)
	}
	if created.Name != "Corner Bakery" {
		t.Errorf("expected stored name Corner Bakery, got %s", created.Name)
	}
}

func TestBusinessService_Create_ValidationFailure(t *testing.T) {
	svc, repo, _ := setupBusinessService(t)

	repo.createFunc = func(ctx context.Context, business bizdomain.Business) error {
		t.Error("repository must not be called when validation fails")
		return nil
	}

	input := validInput()
	input.Name = "abcd"

	_, err := svc.Create(context.Background(), input)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if _, ok := validation.AsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestBusinessService_Get_InvalidIDSkipsRepository(t *testing.T) {
	svc, repo, _ := setupBusinessService(t)

	repo.findByIDFunc = func(ctx context.Context, id bizdomain.ID) (bizdomain.Business, error) {
		t.Error("repository must not be called for a malformed id")
		return bizdomain.Business{}, nil
	}

	_, err := svc.Get(context.Background(), "not-a-valid-id")
	if !errors.Is(err, validation.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestBusinessService_Get_NotFound(t *testing.T) {
	svc, repo, _ := setupBusinessService(t)

	repo.findByIDFunc = func(ctx context.Context, id bizdomain.ID) (bizdomain.Business, error) {
		return bizdomain.Business{}, bizrepo.ErrBusinessNotFound
	}

	_, err := svc.Get(context.Background(), testBusinessID)
	if !errors.Is(err, bizrepo.ErrBusinessNotFound) {
		t.Errorf("expected ErrBusinessNotFound, got %v", err)
	}
}

func TestBusinessService_Update_RefreshesAddedOn(t *testing.T) {
	svc, repo, mockClock := setupBusinessService(t)

	repo.updateFunc = func(ctx context.Context, business bizdomain.Business) (bizdomain.Business, error) {
		return business, nil
	}

	later := mockClock.Now().Add(48 * time.Hour)
	mockClock.SetTime(later)

	updated, err := svc.Update(context.Background(), testBusinessID, validInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !updated.AddedOn.Equal(later) {
		t.Errorf("expected addedOn refreshed to %v, got %v", later, updated.AddedOn)
	}
}

func TestBusinessService_Update_ValidatesPayloadBeforeID(t *testing.T) {
	svc, _, _ := setupBusinessService(t)

	input := validInput()
	input.Phone = "123"

	// Both the payload and the id are bad; the payload complaint wins.
	_, err := svc.Update(context.Background(), "bad-id", input)
	if _, ok := validation.AsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestBusinessService_Update_NotFound(t *testing.T) {
	svc, repo, _ := setupBusinessService(t)

	repo.updateFunc = func(ctx context.Context, business bizdomain.Business) (bizdomain.Business, error) {
		return bizdomain.Business{}, bizrepo.ErrBusinessNotFound
	}

	_, err := svc.Update(context.Background(), testBusinessID, validInput())
	if !errors.Is(err, bizrepo.ErrBusinessNotFound) {
		t.Errorf("expected ErrBusinessNotFound, got %v", err)
	}
}

func TestBusinessService_Delete(t *testing.T) {
	svc, repo, _ := setupBusinessService(t)

	repo.deleteFunc = func(ctx context.Context, id bizdomain.ID) error {
		if id != bizdomain.ID(testBusinessID) {
			t.Errorf("expected id %s, got %s", testBusinessID, id)
		}
		return nil
	}

	if err := svc.Delete(context.Background(), testBusinessID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestBusinessService_Delete_SecondDeleteNotFound(t *testing.T) {
	svc, repo, _ := setupBusinessService(t)

	deleted := false
	repo.deleteFunc = func(ctx context.Context, id bizdomain.ID) error {
		if deleted {
			return bizrepo.ErrBusinessNotFound
		}
		deleted = true
		return nil
	}

	if err := svc.Delete(context.Background(), testBusinessID); err != nil {
		t.Fatalf("expected first delete to succeed, got %v", err)
	}
	if err := svc.Delete(context.Background(), testBusinessID); !errors.Is(err, bizrepo.ErrBusinessNotFound) {
		t.Errorf("expected ErrBusinessNotFound on second delete, got %v", err)
	}
}

func TestBusinessService_List(t *testing.T) {
	svc, repo, _ := setupBusinessService(t)

	repo.findAllFunc = func(ctx context.Context) ([]bizdomain.Summary, error) {
		return []bizdomain.Summary{
			{ID: "aaaaaaaaaaaaaaaaaaaaaaaa", Name: "Alpha", Address: "1 First Ave", Phone: "555-0101"},
			{ID: "bbbbbbbbbbbbbbbbbbbbbbbb", Name: "Beta", Address: "2 Second Ave", Phone: "555-0102"},
		}, nil
	}

	summaries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Name != "Alpha" {
		t.Errorf("expected first summary Alpha, got %s", summaries[0].Name)
	}
}
