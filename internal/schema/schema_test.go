package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findField(t *testing.T, fields []Field, name string) Field {
	t.Helper()
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not found", name)
	return Field{}
}

func TestOrderResource_ItemsRepeater(t *testing.T) {
	r := OrderResource()
	require.Equal(t, "orders", r.Name)
	require.Len(t, r.Form.Sections, 2)

	items := findField(t, r.Form.Sections[1].Fields, "items")
	require.Equal(t, FieldRepeater, items.Type)

	// product_idとquantityはreactive、金額の2つは入力不可
	product := findField(t, items.Fields, "product_id")
	assert.True(t, product.Reactive)
	assert.True(t, product.Distinct)
	assert.Equal(t, "/admin/products/options", product.OptionsURL)

	qty := findField(t, items.Fields, "quantity")
	assert.True(t, qty.Reactive)
	require.NotNil(t, qty.Min)
	assert.Equal(t, int64(1), *qty.Min)
	assert.Equal(t, "1", qty.Default)

	assert.True(t, findField(t, items.Fields, "unit_amount").Disabled)
	assert.True(t, findField(t, items.Fields, "total_amount").Disabled)

	grand := findField(t, r.Form.Sections[1].Fields, "grand_total")
	assert.Equal(t, FieldPlaceholder, grand.Type)
}

func TestOrderResource_StatusOptions(t *testing.T) {
	r := OrderResource()

	status := findField(t, r.Form.Sections[0].Fields, "status")
	require.Equal(t, FieldToggleButtons, status.Type)
	assert.Equal(t, "new", status.Default)
	assert.Len(t, status.Options, 5)

	currency := findField(t, r.Form.Sections[0].Fields, "currency")
	assert.Equal(t, "USD", currency.Default)
	assert.Len(t, currency.Options, 4)
}

func TestUserResource_EmailUnique(t *testing.T) {
	r := UserResource()
	require.Equal(t, "users", r.Name)
	require.NotEmpty(t, r.Form.Sections)

	email := findField(t, r.Form.Sections[0].Fields, "email")
	assert.True(t, email.Unique)
	assert.True(t, email.Required)

	password := findField(t, r.Form.Sections[0].Fields, "password")
	assert.Equal(t, FieldPassword, password.Type)
}
