package services

import (
	"context"
	"errors"
	"testing"

	"expensetracker/internal/core"
	"expensetracker/internal/storage/memory"
)

func TestLedger_Add(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	l := NewLedger(store)

	added, err := l.Add(ctx, AddInput{Date: "2024-01-01", Category: "food", Amount: " 500 ", Description: "lunch"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	want := core.Expense{ID: added.ID, Date: "2024-01-01", Category: "food", Amount: 500, Description: "lunch"}
	if added != want {
		t.Fatalf("Add returned %+v, want %+v", added, want)
	}
	got, found, _ := store.SelectByID(ctx, added.ID)
	if !found {
		t.Fatal("added expense not stored")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLedger_AddRejectsBadAmountWithoutWriting(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	l := NewLedger(store)

	for _, amount := range []string{"", "abc", "-5", "NaN"} {
		_, err := l.Add(ctx, AddInput{Date: "2024-01-01", Category: "food", Amount: amount})
		if !errors.Is(err, core.ErrInvalidAmount) {
			t.Fatalf("amount %q: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
	all, _ := store.SelectAll(ctx)
	if len(all) != 0 {
		t.Fatalf("failed adds should not persist, found %d rows", len(all))
	}
}

func TestLedger_DatesArePermissiveByDefault(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(memory.New())
	if _, err := l.Add(ctx, AddInput{Date: "yesterday", Category: "food", Amount: "1"}); err != nil {
		t.Fatalf("permissive ledger rejected free-form date: %v", err)
	}

	strict := NewLedger(memory.New(), WithStrictDates(true))
	if _, err := strict.Add(ctx, AddInput{Date: "yesterday", Category: "food", Amount: "1"}); !errors.Is(err, core.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := strict.Add(ctx, AddInput{Date: "2024-02-29", Category: "food", Amount: "1"}); err != nil {
		t.Fatalf("strict ledger rejected valid date: %v", err)
	}
}

func TestLedger_Delete(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	l := NewLedger(store)
	added, _ := l.Add(ctx, AddInput{Category: "food", Amount: "1"})
	id := added.ID

	if _, _, err := l.Delete(ctx, "abc"); !errors.Is(err, core.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, _, err := l.Delete(ctx, "0"); !errors.Is(err, core.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID for 0, got %v", err)
	}

	idStr := "1"
	if id != 1 {
		t.Fatalf("expected first id 1, got %d", id)
	}
	gotID, removed, err := l.Delete(ctx, idStr)
	if err != nil || !removed || gotID != id {
		t.Fatalf("first delete: id=%d removed=%v err=%v", gotID, removed, err)
	}
	_, removed, err = l.Delete(ctx, idStr)
	if err != nil || removed {
		t.Fatalf("second delete: removed=%v err=%v", removed, err)
	}
	if _, found, _ := store.SelectByID(ctx, id); found {
		t.Fatal("expense still stored after delete")
	}
}

func TestLedger_DeleteAll(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(memory.New())
	l.Add(ctx, AddInput{Category: "a", Amount: "1"})
	l.Add(ctx, AddInput{Category: "b", Amount: "2"})

	n, err := l.DeleteAll(ctx)
	if err != nil || n != 2 {
		t.Fatalf("DeleteAll: n=%d err=%v", n, err)
	}
	list, _ := l.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}
}

func TestBudgetHolder(t *testing.T) {
	b := NewBudgetHolder()
	if b.Get() != 0 {
		t.Fatalf("initial budget should be 0, got %v", b.Get())
	}
	if err := b.Set(1500); err != nil || b.Get() != 1500 {
		t.Fatalf("Set(1500): err=%v value=%v", err, b.Get())
	}
	if err := b.Set(-1); !errors.Is(err, core.ErrInvalidBudget) {
		t.Fatalf("expected ErrInvalidBudget, got %v", err)
	}
	if _, err := b.SetString("nope"); !errors.Is(err, core.ErrInvalidBudget) {
		t.Fatalf("expected ErrInvalidBudget, got %v", err)
	}
	if b.Get() != 1500 {
		t.Fatalf("failed sets must keep previous value, got %v", b.Get())
	}
	if v, err := b.SetString(" 0 "); err != nil || v != 0 || b.Get() != 0 {
		t.Fatalf("SetString(0): v=%v err=%v", v, err)
	}
}
