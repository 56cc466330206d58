package dto

import (
	"encoding/json"
	"testing"
)

func TestUpdateTodoRequestFieldStates(t *testing.T) {
	var req UpdateTodoRequest
	body := `{"title":"new title","description":null}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !req.Title.Present {
		t.Error("expected title to be present")
	}
	if req.Title.Value == nil || *req.Title.Value != "new title" {
		t.Errorf("expected title value %q, got %v", "new title", req.Title.Value)
	}
	if !req.Description.Present {
		t.Error("expected description to be present")
	}
	if req.Description.Value != nil {
		t.Errorf("expected null description value, got %q", *req.Description.Value)
	}
	if req.Completed.Present {
		t.Error("expected completed to be absent")
	}
}

func TestUpdateTodoRequestEmptyBody(t *testing.T) {
	var req UpdateTodoRequest
	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Title.Present || req.Description.Present || req.Completed.Present {
		t.Errorf("expected all fields absent, got %+v", req)
	}
}

func TestUpdateTodoRequestCompletedValue(t *testing.T) {
	var req UpdateTodoRequest
	if err := json.Unmarshal([]byte(`{"completed":true}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !req.Completed.Present {
		t.Fatal("expected completed to be present")
	}
	if req.Completed.Value == nil || !*req.Completed.Value {
		t.Errorf("expected completed true, got %v", req.Completed.Value)
	}
}

func TestTodoResponseNullDescription(t *testing.T) {
	b, err := json.Marshal(TodoResponse{Title: "x"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	raw, ok := m["description"]
	if !ok {
		t.Fatal("expected description key in response JSON")
	}
	if string(raw) != "null" {
		t.Errorf("expected description null, got %s", raw)
	}
}
