//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

// TestSchemaEndpoints tests all schema-related endpoints
func TestSchemaEndpoints(t *testing.T) {
	t.Run("ListItems", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/schema/items?count=5", nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}

		var result map[string]interface{}
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if _, ok := result["items"]; !ok {
			t.Error("Expected 'items' field in response")
		}
		if _, ok := result["language"]; !ok {
			t.Error("Expected 'language' field in response")
		}

		items, _ := result["items"].([]interface{})
		if len(items) == 0 {
			t.Error("Expected at least one item in listing")
		}
		if len(items) > 5 {
			t.Errorf("Expected at most 5 items, got %d", len(items))
		}
	})

	t.Run("ListOrigins", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/schema/origins", nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}

		var origins []map[string]interface{}
		if err := json.Unmarshal(body, &origins); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if len(origins) == 0 {
			t.Error("Expected at least one origin in schema")
		}
	})

	t.Run("GetAttribute", func(t *testing.T) {
		// Attribute 1 has been in the schema since launch
		resp, body := makeRequest(t, "GET", "/api/v1/schema/attributes/1", nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}

		var result map[string]interface{}
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if name, _ := result["name"].(string); name == "" {
			t.Error("Expected 'name' field in attribute response")
		}
	})

	t.Run("CacheStats", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/admin/cache/stats", nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}

		var result map[string]interface{}
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if _, ok := result["hits"]; !ok {
			t.Error("Expected 'hits' field in response")
		}
	})

	t.Run("InvalidDefindex", func(t *testing.T) {
		resp, _ := makeRequest(t, "GET", "/api/v1/schema/items/not-a-number", nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", resp.StatusCode)
		}
	})

	t.Run("UnknownDefindex", func(t *testing.T) {
		resp, _ := makeRequest(t, "GET", "/api/v1/schema/items/999999999", nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", resp.StatusCode)
		}
	})
}

// TestItemLookupFlow chains the item listing into a detail lookup
func TestItemLookupFlow(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/schema/items?count=1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Skipf("Cannot list items: %d", resp.StatusCode)
	}

	var listing struct {
		Items []struct {
			Defindex int    `json:"defindex"`
			Name     string `json:"name"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		t.Fatalf("Failed to unmarshal listing: %v", err)
	}
	if len(listing.Items) == 0 {
		t.Skip("No items in listing to look up")
	}

	first := listing.Items[0]
	resp, body = makeRequest(t, "GET", fmt.Sprintf("/api/v1/schema/items/%d", first.Defindex), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var detail struct {
		Defindex int    `json:"defindex"`
		Name     string `json:"name"`
		FullName string `json:"full_name"`
	}
	if err := json.Unmarshal(body, &detail); err != nil {
		t.Fatalf("Failed to unmarshal detail: %v", err)
	}

	if detail.Defindex != first.Defindex {
		t.Errorf("Expected defindex %d, got %d", first.Defindex, detail.Defindex)
	}
	if detail.Name != first.Name {
		t.Errorf("Expected name %q, got %q", first.Name, detail.Name)
	}
	if detail.FullName == "" {
		t.Error("Expected a full_name in item detail")
	}
}

// TestSchemaRefresh tests the refresh endpoint. This forces a schema
// fetch from the upstream, so it runs last in the file.
func TestSchemaRefresh(t *testing.T) {
	request := map[string]interface{}{
		"language": "en",
	}

	resp, body := makeRequest(t, "POST", "/api/v1/schema/refresh", request)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Message  string `json:"message"`
		Language string `json:"language"`
		Items    int    `json:"items"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if result.Language != "en" {
		t.Errorf("Expected language 'en', got %q", result.Language)
	}
	if result.Items == 0 {
		t.Error("Expected a non-zero item count after refresh")
	}
}
