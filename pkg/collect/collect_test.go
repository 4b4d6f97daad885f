package collect_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tmplfill/pkg/collect"
	"github.com/goliatone/go-tmplfill/pkg/model"
)

type fakeDriver struct {
	answers  map[string]string
	failOn   string
	prompted []string
	infos    []string
}

func (d *fakeDriver) Input(ctx context.Context, cfg collect.InputConfig) (string, error) {
	d.prompted = append(d.prompted, cfg.Message)
	if cfg.Message == d.failOn {
		return "", errors.New("boom")
	}
	return d.answers[cfg.Message], nil
}

func (d *fakeDriver) Info(ctx context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestCollect_PromptsInTokenOrder(t *testing.T) {
	driver := &fakeDriver{answers: map[string]string{
		"$HOST$": "db01",
		"$PORT$": "5432",
	}}
	c, err := collect.New(collect.WithDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	mapping, err := c.Collect(context.Background(), model.NewTokenSet("$HOST$", "$PORT$"))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := model.Mapping{"$HOST$": "db01", "$PORT$": "5432"}
	if diff := cmp.Diff(want, mapping); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"$HOST$", "$PORT$"}, driver.prompted); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_EmptyAnswerKept(t *testing.T) {
	driver := &fakeDriver{answers: map[string]string{}}
	c, err := collect.New(collect.WithDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	mapping, err := c.Collect(context.Background(), model.NewTokenSet("$A$"))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	value, ok := mapping["$A$"]
	if !ok {
		t.Fatal("empty answer should stay in the mapping")
	}
	if value != "" {
		t.Fatalf("value = %q, want empty", value)
	}
}

func TestCollect_PromptFailureSurfaces(t *testing.T) {
	driver := &fakeDriver{failOn: "$B$"}
	c, err := collect.New(collect.WithDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := c.Collect(context.Background(), model.NewTokenSet("$A$", "$B$")); err == nil {
		t.Fatal("expected prompt failure to surface")
	}
}

func TestCollect_NoTokens(t *testing.T) {
	driver := &fakeDriver{}
	c, err := collect.New(collect.WithDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	mapping, err := c.Collect(context.Background(), model.TokenSet{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(mapping) != 0 {
		t.Fatalf("mapping = %v, want empty", mapping)
	}
	if len(driver.prompted) != 0 {
		t.Fatalf("prompted = %v, want none", driver.prompted)
	}
	if len(driver.infos) != 1 {
		t.Fatalf("infos = %v, want one notice", driver.infos)
	}
}
