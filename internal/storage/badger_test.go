package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/entity"
)

func openTestRepo(t *testing.T, ttl time.Duration) *BadgerRepository {
	t.Helper()
	repo, err := NewBadgerRepository("", ttl)
	if err != nil {
		t.Fatalf("opening in-memory repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveAndGetProfile(t *testing.T) {
	repo := openTestRepo(t, time.Minute)
	ctx := context.Background()

	profile := entity.NewBrandProfile("https://acme.com")
	profile.BrandName = "Acme"
	profile.ProductCatalog = []entity.Product{{Title: "Widget", Price: "19.99"}}

	if err := repo.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("saving profile: %v", err)
	}

	loaded, err := repo.GetProfile(ctx, "https://acme.com")
	if err != nil {
		t.Fatalf("loading profile: %v", err)
	}
	if loaded.BrandName != "Acme" {
		t.Errorf("brand name = %q", loaded.BrandName)
	}
	if len(loaded.ProductCatalog) != 1 || loaded.ProductCatalog[0].Title != "Widget" {
		t.Errorf("unexpected catalog: %+v", loaded.ProductCatalog)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	repo := openTestRepo(t, time.Minute)
	if _, err := repo.GetProfile(context.Background(), "https://unknown.example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveProfileOverwrites(t *testing.T) {
	repo := openTestRepo(t, time.Minute)
	ctx := context.Background()

	first := entity.NewBrandProfile("https://acme.com")
	first.BrandName = "Old Name"
	if err := repo.SaveProfile(ctx, first); err != nil {
		t.Fatalf("saving first profile: %v", err)
	}

	second := entity.NewBrandProfile("https://acme.com")
	second.BrandName = "New Name"
	if err := repo.SaveProfile(ctx, second); err != nil {
		t.Fatalf("saving second profile: %v", err)
	}

	loaded, err := repo.GetProfile(ctx, "https://acme.com")
	if err != nil {
		t.Fatalf("loading profile: %v", err)
	}
	if loaded.BrandName != "New Name" {
		t.Errorf("expected latest profile, got %q", loaded.BrandName)
	}
}

func TestProfilesAreKeyedBySite(t *testing.T) {
	repo := openTestRepo(t, 0)
	ctx := context.Background()

	a := entity.NewBrandProfile("https://a.example.com")
	a.BrandName = "A"
	b := entity.NewBrandProfile("https://b.example.com")
	b.BrandName = "B"

	if err := repo.SaveProfile(ctx, a); err != nil {
		t.Fatalf("saving a: %v", err)
	}
	if err := repo.SaveProfile(ctx, b); err != nil {
		t.Fatalf("saving b: %v", err)
	}

	loaded, err := repo.GetProfile(ctx, "https://a.example.com")
	if err != nil {
		t.Fatalf("loading a: %v", err)
	}
	if loaded.BrandName != "A" {
		t.Errorf("expected profile A, got %q", loaded.BrandName)
	}
}
