package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/bgcollection/storefront/internal/constants"
	"github.com/bgcollection/storefront/internal/models"
)

func TestCartAddMergesSameLineKey(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	if _, err := env.cart.Add(ctx, testSessionID, AddCartLineInput{ProductID: "1", Quantity: 1, Size: "A5", Color: "Brown"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	summary, err := env.cart.Add(ctx, testSessionID, AddCartLineInput{ProductID: "1", Quantity: 2, Size: "A5", Color: "Brown"})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(summary.Lines) != 1 || summary.Lines[0].Quantity != 3 {
		t.Fatalf("same key should merge into one line with quantity 3, got %+v", summary.Lines)
	}
	if summary.ItemCount != 3 {
		t.Fatalf("item count want 3 got %d", summary.ItemCount)
	}
}

func TestCartDistinctVariantsStaySeparate(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	inputs := []AddCartLineInput{
		{ProductID: "1", Quantity: 1, Size: "A5", Color: "Brown"},
		{ProductID: "1", Quantity: 1, Size: "A6", Color: "Brown"},
		{ProductID: "1", Quantity: 1},
	}
	for _, input := range inputs {
		if _, err := env.cart.Add(ctx, testSessionID, input); err != nil {
			t.Fatalf("add %+v failed: %v", input, err)
		}
	}
	lines, err := env.cart.List(ctx, testSessionID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("distinct keys should give 3 lines, got %d", len(lines))
	}
	seen := map[models.LineKey]bool{}
	for _, line := range lines {
		if seen[line.Key()] {
			t.Fatalf("duplicate line key %s", line.Key().String())
		}
		seen[line.Key()] = true
	}
}

func TestCartAddRejectsInvalidInput(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input AddCartLineInput
		want  error
	}{
		{name: "zero quantity", input: AddCartLineInput{ProductID: "1", Quantity: 0}, want: ErrInvalidQuantity},
		{name: "unknown product", input: AddCartLineInput{ProductID: "999", Quantity: 1}, want: ErrProductNotFound},
		{name: "empty product", input: AddCartLineInput{Quantity: 1}, want: ErrProductNotFound},
		{name: "unknown size", input: AddCartLineInput{ProductID: "1", Quantity: 1, Size: "XXL"}, want: ErrProductOptionInvalid},
		{name: "unknown color", input: AddCartLineInput{ProductID: "1", Quantity: 1, Color: "Pink"}, want: ErrProductOptionInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := env.cart.Add(ctx, testSessionID, tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("want %v got %v", tc.want, err)
			}
		})
	}
	lines, _ := env.cart.List(ctx, testSessionID)
	if len(lines) != 0 {
		t.Fatalf("rejected adds must not persist lines, got %d", len(lines))
	}
}

func TestCartPriceComesFromCatalog(t *testing.T) {
	env := newServiceTestEnv(t)
	summary, err := env.cart.Add(context.Background(), testSessionID, AddCartLineInput{ProductID: "3", Quantity: 2})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	line := summary.Lines[0]
	if line.Name != "Minimal Clock" || line.UnitPrice.String() != "500.00" || line.ImageRef != "/images/minimal-clock.jpg" {
		t.Fatalf("line should be resolved from catalog, got %+v", line)
	}
}

func TestCartUpdateQuantityClampsAndIgnoresMissing(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()
	if _, err := env.cart.Add(ctx, testSessionID, AddCartLineInput{ProductID: "3", Quantity: 4}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	key := models.NewLineKey("3", "", "")

	summary, err := env.cart.UpdateQuantity(ctx, testSessionID, key, 0)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if summary.Lines[0].Quantity != 1 {
		t.Fatalf("quantity below 1 should clamp to 1, got %d", summary.Lines[0].Quantity)
	}
	summary, err = env.cart.UpdateQuantity(ctx, testSessionID, key, 7)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if summary.Lines[0].Quantity != 7 {
		t.Fatalf("quantity want 7 got %d", summary.Lines[0].Quantity)
	}
	summary, err = env.cart.UpdateQuantity(ctx, testSessionID, models.NewLineKey("3", "L", ""), 2)
	if err != nil {
		t.Fatalf("update missing line failed: %v", err)
	}
	if len(summary.Lines) != 1 || summary.Lines[0].Quantity != 7 {
		t.Fatalf("missing line update must be a no-op, got %+v", summary.Lines)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()
	for _, id := range []string{"1", "3"} {
		if _, err := env.cart.Add(ctx, testSessionID, AddCartLineInput{ProductID: id, Quantity: 1}); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	summary, err := env.cart.Remove(ctx, testSessionID, models.NewLineKey("2", "", ""))
	if err != nil {
		t.Fatalf("remove missing failed: %v", err)
	}
	if len(summary.Lines) != 2 {
		t.Fatalf("removing a missing line must be a no-op")
	}
	summary, err = env.cart.Remove(ctx, testSessionID, models.NewLineKey("1", "", ""))
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(summary.Lines) != 1 || summary.Lines[0].ProductID != "3" {
		t.Fatalf("unexpected lines after remove: %+v", summary.Lines)
	}
	if err := env.cart.Clear(ctx, testSessionID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	lines, _ := env.cart.List(ctx, testSessionID)
	if len(lines) != 0 {
		t.Fatalf("cart should be empty after clear")
	}
}

func TestCartSummaryExcludesTax(t *testing.T) {
	env := newServiceTestEnv(t)
	summary, err := env.cart.Add(context.Background(), testSessionID, AddCartLineInput{ProductID: "1", Quantity: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if summary.Pricing.Subtotal.String() != "1499.00" || summary.Pricing.ShippingFee.String() != "0.00" {
		t.Fatalf("unexpected pricing: %+v", summary.Pricing)
	}
	if summary.Pricing.Total.String() != "1499.00" || summary.Pricing.TaxIncluded {
		t.Fatalf("cart total should exclude tax, got %s", summary.Pricing.Total.String())
	}
	if summary.EstimatedTax.String() != "269.82" {
		t.Fatalf("estimated tax want 269.82 got %s", summary.EstimatedTax.String())
	}
}

func TestCartPromoAppliesOnce(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()
	if _, err := env.cart.Add(ctx, testSessionID, AddCartLineInput{ProductID: "3", Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, _, err := env.cart.ApplyPromo(ctx, testSessionID, "SAVE50"); !errors.Is(err, ErrPromoCodeInvalid) {
		t.Fatalf("unknown promo want ErrPromoCodeInvalid got %v", err)
	}
	summary, already, err := env.cart.ApplyPromo(ctx, testSessionID, "welcome10")
	if err != nil || already {
		t.Fatalf("first apply failed: already=%v err=%v", already, err)
	}
	if summary.Pricing.Discount.String() != "100.00" || summary.Pricing.PromoCode != "WELCOME10" {
		t.Fatalf("discount want 100 got %+v", summary.Pricing)
	}
	summary, already, err = env.cart.ApplyPromo(ctx, testSessionID, "WELCOME10")
	if err != nil || !already {
		t.Fatalf("second apply should report already applied: already=%v err=%v", already, err)
	}
	if summary.Pricing.Discount.String() != "100.00" {
		t.Fatalf("discount must not stack, got %s", summary.Pricing.Discount.String())
	}
	summary, err = env.cart.RemovePromo(ctx, testSessionID)
	if err != nil {
		t.Fatalf("remove promo failed: %v", err)
	}
	if !summary.Pricing.Discount.IsZero() {
		t.Fatalf("discount should be cleared, got %s", summary.Pricing.Discount.String())
	}
}

func TestCartRejectsEmptySession(t *testing.T) {
	env := newServiceTestEnv(t)
	if _, err := env.cart.Add(context.Background(), "", AddCartLineInput{ProductID: "1", Quantity: 1}); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("want ErrSessionInvalid got %v", err)
	}
}

func TestCartMalformedStorageDegradesToEmpty(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()
	if err := env.storage.Save(ctx, testSessionID, constants.StorageKeyCart, []byte("{not json")); err != nil {
		t.Fatalf("seed malformed cart failed: %v", err)
	}
	lines, err := env.cart.List(ctx, testSessionID)
	if err != nil {
		t.Fatalf("malformed cart should not error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("malformed cart should read as empty")
	}
	summary, err := env.cart.Add(ctx, testSessionID, AddCartLineInput{ProductID: "3", Quantity: 1})
	if err != nil {
		t.Fatalf("add after malformed failed: %v", err)
	}
	if len(summary.Lines) != 1 {
		t.Fatalf("add should overwrite malformed value")
	}
}

func TestCartAddRejectsQuantityOverflow(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	if _, err := env.cart.Add(ctx, testSessionID, AddCartLineInput{ProductID: "3", Quantity: math.MaxInt}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := env.cart.Add(ctx, testSessionID, AddCartLineInput{ProductID: "3", Quantity: 1}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity on overflow got %v", err)
	}
	lines, err := env.cart.List(ctx, testSessionID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != math.MaxInt {
		t.Fatalf("stored quantity must stay unchanged, got %+v", lines)
	}
}
