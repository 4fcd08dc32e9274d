package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apidrift/apidrift/normalizer"
	"github.com/apidrift/apidrift/parser"
)

func mustNormalize(t *testing.T, content string) *normalizer.Document {
	t.Helper()
	result, err := parser.Parse(content, parser.SourceFormatYAML)
	require.NoError(t, err)
	return normalizer.Normalize(result.Data)
}

func docWithPaths(t *testing.T, paths string) *normalizer.Document {
	t.Helper()
	return mustNormalize(t, "openapi: 3.0.0\ninfo:\n  title: Test\n  version: 1.0.0\npaths:\n"+paths)
}

func TestDiffEndpoints(t *testing.T) {
	oldDoc := docWithPaths(t, `
  /users:
    get:
      responses:
        "200":
          description: ok
  /orders:
    get:
      responses:
        "200":
          description: ok
`)
	newDoc := docWithPaths(t, `
  /users:
    get:
      responses:
        "200":
          description: ok
  /invoices:
    get:
      responses:
        "200":
          description: ok
`)

	changes := Diff(oldDoc, newDoc)
	require.Len(t, changes, 2)

	removed := changes[0]
	assert.Equal(t, SeverityBreaking, removed.Type)
	assert.Equal(t, CategoryEndpoint, removed.Category)
	assert.Equal(t, "/orders", removed.Path)
	assert.Empty(t, removed.Method)
	assert.Equal(t, "Endpoint removed", removed.Message)

	added := changes[1]
	assert.Equal(t, SeverityNonBreaking, added.Type)
	assert.Equal(t, CategoryEndpoint, added.Category)
	assert.Equal(t, "/invoices", added.Path)
	assert.Equal(t, "New endpoint", added.Message)
}

// Swapping the compared documents mirrors the result: what one direction
// reports removed the other reports added, over the same paths and methods.
func TestDiffRemovalAdditionMirror(t *testing.T) {
	docA := docWithPaths(t, `
  /users:
    get:
      responses:
        "200":
          description: ok
    delete:
      responses:
        "204":
          description: gone
  /orders:
    get:
      responses:
        "200":
          description: ok
`)
	docB := docWithPaths(t, `
  /users:
    get:
      responses:
        "200":
          description: ok
    post:
      responses:
        "201":
          description: created
  /invoices:
    get:
      responses:
        "200":
          description: ok
`)

	forward := Diff(docA, docB)
	reverse := Diff(docB, docA)

	collect := func(changes []Change, category ChangeCategory, message string) []string {
		targets := make([]string, 0)
		for _, change := range changes {
			if change.Category != category || change.Message != message {
				continue
			}
			target := change.Path
			if change.Method != "" {
				target = change.Method + " " + change.Path
			}
			targets = append(targets, target)
		}
		return targets
	}

	assert.Equal(t,
		collect(forward, CategoryEndpoint, "Endpoint removed"),
		collect(reverse, CategoryEndpoint, "New endpoint"))
	assert.Equal(t,
		collect(forward, CategoryEndpoint, "New endpoint"),
		collect(reverse, CategoryEndpoint, "Endpoint removed"))
	assert.Equal(t,
		collect(forward, CategoryMethod, "HTTP method removed"),
		collect(reverse, CategoryMethod, "New HTTP method"))
	assert.Equal(t,
		collect(forward, CategoryMethod, "New HTTP method"),
		collect(reverse, CategoryMethod, "HTTP method removed"))

	assert.Equal(t, []string{"/orders"}, collect(forward, CategoryEndpoint, "Endpoint removed"))
	assert.Equal(t, []string{"DELETE /users"}, collect(forward, CategoryMethod, "HTTP method removed"))
}

func TestDiffMethods(t *testing.T) {
	oldDoc := docWithPaths(t, `
  /users:
    get:
      responses:
        "200":
          description: ok
    delete:
      responses:
        "204":
          description: gone
`)
	newDoc := docWithPaths(t, `
  /users:
    get:
      responses:
        "200":
          description: ok
    post:
      responses:
        "201":
          description: created
`)

	changes := Diff(oldDoc, newDoc)
	require.Len(t, changes, 2)

	assert.Equal(t, SeverityBreaking, changes[0].Type)
	assert.Equal(t, CategoryMethod, changes[0].Category)
	assert.Equal(t, "DELETE", changes[0].Method)
	assert.Equal(t, "HTTP method removed", changes[0].Message)

	assert.Equal(t, SeverityNonBreaking, changes[1].Type)
	assert.Equal(t, "POST", changes[1].Method)
	assert.Equal(t, "New HTTP method", changes[1].Message)
}

func TestDiffParameters(t *testing.T) {
	t.Run("required parameter added is breaking", func(t *testing.T) {
		oldDoc := docWithPaths(t, `
  /users:
    get:
      parameters: []
      responses:
        "200":
          description: ok
`)
		newDoc := docWithPaths(t, `
  /users:
    get:
      parameters:
        - name: tenant
          in: query
          required: true
          schema:
            type: string
      responses:
        "200":
          description: ok
`)

		changes := Diff(oldDoc, newDoc)
		require.Len(t, changes, 1)
		assert.Equal(t, SeverityBreaking, changes[0].Type)
		assert.Equal(t, CategoryParameter, changes[0].Category)
		assert.Equal(t, "GET", changes[0].Method)
		assert.Equal(t, "tenant", changes[0].Field)
		assert.Equal(t, "Required request parameter added", changes[0].Message)
	})

	t.Run("optional parameter added is non-breaking", func(t *testing.T) {
		oldDoc := docWithPaths(t, `
  /users:
    get:
      parameters: []
      responses:
        "200":
          description: ok
`)
		newDoc := docWithPaths(t, `
  /users:
    get:
      parameters:
        - name: page
          in: query
          schema:
            type: integer
      responses:
        "200":
          description: ok
`)

		changes := Diff(oldDoc, newDoc)
		require.Len(t, changes, 1)
		assert.Equal(t, SeverityNonBreaking, changes[0].Type)
		assert.Equal(t, "New optional parameter", changes[0].Message)
	})

	t.Run("parameter removed is breaking", func(t *testing.T) {
		oldDoc := docWithPaths(t, `
  /users:
    get:
      parameters:
        - name: page
          in: query
          schema:
            type: integer
      responses:
        "200":
          description: ok
`)
		newDoc := docWithPaths(t, `
  /users:
    get:
      parameters: []
      responses:
        "200":
          description: ok
`)

		changes := Diff(oldDoc, newDoc)
		require.Len(t, changes, 1)
		assert.Equal(t, SeverityBreaking, changes[0].Type)
		assert.Equal(t, "Parameter removed", changes[0].Message)
	})

	t.Run("type change needs both sides declared", func(t *testing.T) {
		oldDoc := docWithPaths(t, `
  /users:
    get:
      parameters:
        - name: page
          in: query
          schema:
            type: integer
        - name: sort
          in: query
        - name: q
          in: query
          schema:
            type: string
      responses:
        "200":
          description: ok
`)
		newDoc := docWithPaths(t, `
  /users:
    get:
      parameters:
        - name: page
          in: query
          schema:
            type: string
        - name: sort
          in: query
          schema:
            type: string
        - name: q
          in: query
          schema:
            type: string
      responses:
        "200":
          description: ok
`)

		changes := Diff(oldDoc, newDoc)
		require.Len(t, changes, 1, "sort has no old type, q is unchanged")
		assert.Equal(t, SeverityBreaking, changes[0].Type)
		assert.Equal(t, "page", changes[0].Field)
		assert.Equal(t, "Parameter type changed", changes[0].Message)
	})
}

func TestDiffRequestBody(t *testing.T) {
	oldDoc := docWithPaths(t, `
  /users:
    post:
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                name:
                  type: string
                age:
                  type: integer
                nickname:
                  type: string
      responses:
        "201":
          description: created
`)
	newDoc := docWithPaths(t, `
  /users:
    post:
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required:
                - email
              properties:
                name:
                  type: string
                age:
                  type: string
                email:
                  type: string
                bio:
                  type: string
      responses:
        "201":
          description: created
`)

	changes := Diff(oldDoc, newDoc)
	require.Len(t, changes, 4)

	assert.Equal(t, "nickname", changes[0].Field)
	assert.Equal(t, SeverityBreaking, changes[0].Type)
	assert.Equal(t, "Request/response field removed", changes[0].Message)

	assert.Equal(t, "email", changes[1].Field)
	assert.Equal(t, SeverityBreaking, changes[1].Type)
	assert.Equal(t, "Required request body field added", changes[1].Message)

	assert.Equal(t, "bio", changes[2].Field)
	assert.Equal(t, SeverityNonBreaking, changes[2].Type)
	assert.Equal(t, "New optional request field", changes[2].Message)

	assert.Equal(t, "age", changes[3].Field)
	assert.Equal(t, SeverityBreaking, changes[3].Type)
	assert.Equal(t, "Field type changed", changes[3].Message)

	for _, c := range changes {
		assert.Equal(t, CategorySchema, c.Category)
		assert.Equal(t, "POST", c.Method)
	}
}

func TestDiffRequestBodySkippedWhenOneSideEmpty(t *testing.T) {
	withBody := docWithPaths(t, `
  /users:
    post:
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                name:
                  type: string
      responses:
        "201":
          description: created
`)
	withoutBody := docWithPaths(t, `
  /users:
    post:
      parameters: []
      responses:
        "201":
          description: created
`)

	assert.Empty(t, Diff(withBody, withoutBody), "body disappearing is not reported")
	assert.Empty(t, Diff(withoutBody, withBody), "body appearing is not reported")
}

func TestDiffResponses(t *testing.T) {
	oldDoc := docWithPaths(t, `
  /users:
    get:
      responses:
        "200":
          description: ok
        "404":
          description: missing
`)
	newDoc := docWithPaths(t, `
  /users:
    get:
      responses:
        "429":
          description: slow down
`)

	changes := Diff(oldDoc, newDoc)
	require.Len(t, changes, 3)

	assert.Equal(t, SeverityBreaking, changes[0].Type)
	assert.Equal(t, "Response 200", changes[0].Field)
	assert.Equal(t, "Success response (2xx) removed", changes[0].Message)

	assert.Equal(t, SeverityPotentiallyBreaking, changes[1].Type)
	assert.Equal(t, "Response 404", changes[1].Field)
	assert.Equal(t, "Non-2xx response removed", changes[1].Message)

	assert.Equal(t, SeverityNonBreaking, changes[2].Type)
	assert.Equal(t, "Response 429", changes[2].Field)
	assert.Equal(t, "New response status", changes[2].Message)

	for _, c := range changes {
		assert.Equal(t, CategoryResponse, c.Category)
		assert.Equal(t, "GET", c.Method)
	}
}

func TestDiffSwagger2Parameters(t *testing.T) {
	oldDoc := mustNormalize(t, `
swagger: "2.0"
info:
  title: Test
paths:
  /users:
    get:
      parameters:
        - name: limit
          in: query
          type: integer
      responses:
        "200":
          description: ok
`)
	newDoc := mustNormalize(t, `
swagger: "2.0"
info:
  title: Test
paths:
  /users:
    get:
      parameters:
        - name: limit
          in: query
          type: string
      responses:
        "200":
          description: ok
`)

	changes := Diff(oldDoc, newDoc)
	require.Len(t, changes, 1)
	assert.Equal(t, SeverityBreaking, changes[0].Type)
	assert.Equal(t, "limit", changes[0].Field)
	assert.Equal(t, "Parameter type changed", changes[0].Message)
}

func TestDiffOperationShapeFollowsOldOperation(t *testing.T) {
	// The old operation has neither "parameters" nor "requestBody", so
	// both sides read as Swagger 2.0 and the new side's requestBody is
	// never inspected.
	oldDoc := docWithPaths(t, `
  /users:
    post:
      responses:
        "201":
          description: created
`)
	newDoc := docWithPaths(t, `
  /users:
    post:
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                name:
                  type: string
      responses:
        "201":
          description: created
`)

	assert.Empty(t, Diff(oldDoc, newDoc))
}

func TestDiffIdenticalDocuments(t *testing.T) {
	content := `
  /users:
    get:
      parameters:
        - name: page
          in: query
          schema:
            type: integer
      responses:
        "200":
          description: ok
`
	changes := Diff(docWithPaths(t, content), docWithPaths(t, content))
	assert.Empty(t, changes)
	assert.NotNil(t, changes, "no drift still yields an empty slice, not nil")
}

func TestDiffDeterministicOrder(t *testing.T) {
	oldDoc := docWithPaths(t, `
  /zebra:
    get:
      responses:
        "200":
          description: ok
  /apple:
    get:
      responses:
        "200":
          description: ok
  /mango:
    get:
      responses:
        "200":
          description: ok
`)
	newDoc := docWithPaths(t, "  /other:\n    get:\n      responses:\n        \"200\":\n          description: ok\n")

	first := Diff(oldDoc, newDoc)
	require.Len(t, first, 4)
	assert.Equal(t, "/zebra", first[0].Path, "removals follow document order, not sorted order")
	assert.Equal(t, "/apple", first[1].Path)
	assert.Equal(t, "/mango", first[2].Path)
	assert.Equal(t, "/other", first[3].Path)

	for range 25 {
		assert.Equal(t, first, Diff(oldDoc, newDoc))
	}
}

func TestSummarize(t *testing.T) {
	changes := []Change{
		{Type: SeverityBreaking},
		{Type: SeverityBreaking},
		{Type: SeverityPotentiallyBreaking},
		{Type: SeverityNonBreaking},
	}

	s := Summarize(changes)
	assert.Equal(t, 2, s.Breaking)
	assert.Equal(t, 1, s.PotentiallyBreaking)
	assert.Equal(t, 1, s.NonBreaking)
	assert.Equal(t, len(changes), s.Total())

	assert.Zero(t, Summarize(nil).Total())
}

func TestChangeString(t *testing.T) {
	breaking := Change{
		Type:     SeverityBreaking,
		Category: CategoryParameter,
		Path:     "/users",
		Method:   "GET",
		Field:    "tenant",
		Message:  "Required request parameter added",
	}
	assert.Equal(t, "✗ GET /users [parameter] tenant: Required request parameter added", breaking.String())

	endpoint := Change{
		Type:     SeverityNonBreaking,
		Category: CategoryEndpoint,
		Path:     "/users",
		Message:  "New endpoint",
	}
	assert.Equal(t, "ℹ /users [endpoint]: New endpoint", endpoint.String())

	warn := Change{
		Type:     SeverityPotentiallyBreaking,
		Category: CategoryResponse,
		Path:     "/users",
		Method:   "GET",
		Field:    "Response 404",
		Message:  "Non-2xx response removed",
	}
	assert.Equal(t, "⚠ GET /users [response] Response 404: Non-2xx response removed", warn.String())
}
