package http

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ekviron/orders-api/internal/orders/adapters/http/mapper"
	apierrors "github.com/ekviron/orders-api/internal/shared/errors"
)

func validPayload() mapper.Order {
	return mapper.Order{
		Seller:   "123456789",
		Customer: "987654321",
		Products: []mapper.Product{{Name: "Product 1", Code: "1234567890123"}},
	}
}

func violationFor(t *testing.T, violations []apierrors.FieldViolation, field string) apierrors.FieldViolation {
	t.Helper()
	for _, v := range violations {
		if v.Field == field {
			return v
		}
	}
	t.Fatalf("no violation for field %q in %+v", field, violations)
	return apierrors.FieldViolation{}
}

func TestValidateRequest_ValidPayload(t *testing.T) {
	violations, subErrors := ValidateRequest(validPayload())
	require.Empty(t, violations)
	require.Empty(t, subErrors)
}

func TestValidateRequest_SellerWrongLength(t *testing.T) {
	payload := validPayload()
	payload.Seller = "12345"

	violations, _ := ValidateRequest(payload)

	v := violationFor(t, violations, "seller")
	require.Equal(t, "12345", v.RejectedValue)
	require.Equal(t, "size must be between 9 and 9", v.Message)
}

func TestValidateRequest_BlankCustomer(t *testing.T) {
	payload := validPayload()
	payload.Customer = "         "

	violations, _ := ValidateRequest(payload)

	v := violationFor(t, violations, "customer")
	require.Equal(t, "must not be blank", v.Message)
}

func TestValidateRequest_MissingSeller(t *testing.T) {
	payload := validPayload()
	payload.Seller = ""

	violations, _ := ValidateRequest(payload)

	v := violationFor(t, violations, "seller")
	require.Equal(t, "must not be blank", v.Message)
}

func TestValidateRequest_EmptyProducts(t *testing.T) {
	payload := validPayload()
	payload.Products = []mapper.Product{}

	violations, _ := ValidateRequest(payload)

	v := violationFor(t, violations, "products")
	require.Equal(t, "must not be empty", v.Message)
}

func TestValidateRequest_ProductCodeWrongLength(t *testing.T) {
	payload := validPayload()
	payload.Products = append(payload.Products, mapper.Product{Name: "Product 2", Code: "123"})

	violations, _ := ValidateRequest(payload)

	v := violationFor(t, violations, "products[1].code")
	require.Equal(t, "123", v.RejectedValue)
	require.Equal(t, "size must be between 13 and 13", v.Message)
}

func TestValidateRequest_BlankProductName(t *testing.T) {
	payload := validPayload()
	payload.Products[0].Name = " "

	violations, _ := ValidateRequest(payload)

	v := violationFor(t, violations, "products[0].name")
	require.Equal(t, "must not be blank", v.Message)
}

func TestValidateRequest_CollectsAllViolations(t *testing.T) {
	payload := mapper.Order{
		Seller:   "short",
		Customer: "",
		Products: nil,
	}

	violations, subErrors := ValidateRequest(payload)

	require.Empty(t, subErrors)
	require.Len(t, violations, 3)
	violationFor(t, violations, "seller")
	violationFor(t, violations, "customer")
	violationFor(t, violations, "products")
}
