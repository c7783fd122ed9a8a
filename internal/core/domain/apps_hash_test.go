package domain_test

import (
	"testing"

	"go.trai.ch/vdep/internal/core/domain"
)

func TestInstalledAppsHash_Deterministic(t *testing.T) {
	apps := []string{"django.contrib.auth", "myapp"}
	if domain.InstalledAppsHash(apps) != domain.InstalledAppsHash(apps) {
		t.Error("InstalledAppsHash() not deterministic")
	}
}

func TestInstalledAppsHash_OrderIndependent(t *testing.T) {
	h1 := domain.InstalledAppsHash([]string{"myapp", "django.contrib.auth"})
	h2 := domain.InstalledAppsHash([]string{"django.contrib.auth", "myapp", "myapp"})
	if h1 != h2 {
		t.Errorf("InstalledAppsHash() not order independent: %s != %s", h1, h2)
	}
}

func TestInstalledAppsHash_DifferentApps(t *testing.T) {
	h1 := domain.InstalledAppsHash([]string{"myapp"})
	h2 := domain.InstalledAppsHash([]string{"myapp", "leftover"})
	if h1 == h2 {
		t.Error("InstalledAppsHash() produced same hash for different apps")
	}
}

func TestInstalledAppsHash_Format(t *testing.T) {
	h := domain.InstalledAppsHash(nil)
	if len(h) != 64 {
		t.Errorf("InstalledAppsHash() length = %d, want 64 (SHA-256 hex)", len(h))
	}
}
