package pro

import (
	"net/http"
	"pcpro/pkg/apiclient"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationsTable(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, 135)

	ids := map[string]bool{}
	routes := map[string]bool{}
	for _, op := range ops {
		t.Run(op.ID, func(t *testing.T) {
			assert.False(t, ids[op.ID], "duplicate operation id")
			ids[op.ID] = true

			route := op.Method + " " + op.Path
			assert.False(t, routes[route], "duplicate route")
			routes[route] = true

			assert.Contains(t, []string{
				http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
			}, op.Method)
			assert.Equal(t, op.Placeholders(), op.PathParams(), "path params must follow the template")
			assert.NotEmpty(t, op.Errors)
			assert.Contains(t, op.Errors, 422)

			if op.Body != nil {
				assert.NotEqual(t, apiclient.EncodingNone, op.Encoding)
			}
			for _, p := range op.Params {
				if p.In == apiclient.InPath {
					assert.True(t, p.Required)
				}
			}
		})
	}
}

func TestOperationsSorted(t *testing.T) {
	ops := Operations()
	for i := 1; i < len(ops); i++ {
		prev, cur := ops[i-1], ops[i]
		if prev.Path == cur.Path {
			assert.LessOrEqual(t, prev.Method, cur.Method)
			continue
		}
		assert.Less(t, prev.Path, cur.Path)
	}
}

func TestDeprecatedOperations(t *testing.T) {
	var deprecated []string
	for _, op := range Operations() {
		if op.Deprecated {
			deprecated = append(deprecated, op.ID)
		}
	}
	assert.Contains(t, deprecated, "postDraftOffer")
}

func TestEnums(t *testing.T) {
	assert.True(t, BookingStatusFilterBooked.IsValid())
	assert.False(t, BookingStatusFilter("pending").IsValid())
	assert.Equal(t, "excel", BookingExportTypeExcel.String())

	var collective CollectiveBookingStatusFilter = BookingStatusFilterReimbursed
	assert.True(t, collective.IsValid())
	assert.Equal(t, reflect.TypeOf(BookingStatusFilter("")), reflect.TypeOf(collective))

	assert.Equal(t, []interface{}{BookingExportTypeCsv, BookingExportTypeExcel}, BookingExportType("").Enum())
}
