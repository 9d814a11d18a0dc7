package network

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestRotatorRoundRobin(t *testing.T) {
	rotator, err := NewRotator([]string{"http://a:8080", " ", "http://b:8080"}, time.Minute)
	if err != nil {
		t.Fatalf("NewRotator() error = %v", err)
	}
	if rotator.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", rotator.Len())
	}

	var got []string
	for i := 0; i < 4; i++ {
		proxy, err := rotator.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		got = append(got, proxy.Host)
	}
	want := []string{"a:8080", "b:8080", "a:8080", "b:8080"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Next() sequence = %v, want %v", got, want)
		}
	}
}

func TestRotatorBansThrottledProxy(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rotator, err := NewRotator([]string{"http://a:8080", "http://b:8080"}, 10*time.Minute)
	if err != nil {
		t.Fatalf("NewRotator() error = %v", err)
	}
	rotator.now = func() time.Time { return now }

	first, _ := rotator.Next()
	rotator.Report(first, http.StatusTooManyRequests)

	for i := 0; i < 3; i++ {
		proxy, err := rotator.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if proxy.String() == first.String() {
			t.Fatalf("banned proxy %s returned", first)
		}
	}

	now = now.Add(11 * time.Minute)
	seenFirst := false
	for i := 0; i < 2; i++ {
		proxy, _ := rotator.Next()
		if proxy.String() == first.String() {
			seenFirst = true
		}
	}
	if !seenFirst {
		t.Fatalf("expected %s to return after ban expiry", first)
	}
}

func TestRotatorAllBanned(t *testing.T) {
	rotator, err := NewRotator([]string{"http://a:8080"}, time.Hour)
	if err != nil {
		t.Fatalf("NewRotator() error = %v", err)
	}
	proxy, _ := rotator.Next()
	rotator.Report(proxy, http.StatusForbidden)

	if _, err := rotator.Next(); !errors.Is(err, ErrNoProxies) {
		t.Fatalf("Next() error = %v, want ErrNoProxies", err)
	}
}

func TestRotatorIgnoresOtherStatuses(t *testing.T) {
	rotator, _ := NewRotator([]string{"http://a:8080"}, time.Hour)
	proxy, _ := rotator.Next()
	rotator.Report(proxy, http.StatusInternalServerError)

	if _, err := rotator.Next(); err != nil {
		t.Fatalf("Next() error = %v, want nil", err)
	}
}

func TestNewRotatorRejectsRelativeURL(t *testing.T) {
	if _, err := NewRotator([]string{"localhost"}, time.Minute); err == nil {
		t.Fatalf("NewRotator() error = nil, want error")
	}
}
