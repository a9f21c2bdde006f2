package models

import "encoding/json"

// Element is a single drawable record owned by the widget. Elements stay
// opaque so unknown widget fields survive a load/save round trip; only the
// deletion marker is interpreted.
type Element map[string]any

func (e Element) IsDeleted() bool {
	deleted, _ := e["isDeleted"].(bool)
	return deleted
}

// ScenePayload is the persisted form of a widget scene.
type ScenePayload struct {
	Elements []Element                  `json:"elements"`
	AppState map[string]any             `json:"appState"`
	Files    map[string]json.RawMessage `json:"files"`
}

// Widget runtime-only appState keys that must never reach storage.
var runtimeAppStateKeys = map[string]struct{}{
	"collaborators": {},
}

func EmptyScene() *ScenePayload {
	return &ScenePayload{
		Elements: make([]Element, 0),
		AppState: make(map[string]any),
		Files:    make(map[string]json.RawMessage),
	}
}

// Normalize fills nil fields so the payload always matches the scaffold shape.
func (p *ScenePayload) Normalize() {
	if p.Elements == nil {
		p.Elements = make([]Element, 0)
	}
	if p.AppState == nil {
		p.AppState = make(map[string]any)
	}
	if p.Files == nil {
		p.Files = make(map[string]json.RawMessage)
	}
}

// HasContent reports whether the scene holds any non-deleted element or any file.
func (p *ScenePayload) HasContent() bool {
	for _, el := range p.Elements {
		if !el.IsDeleted() {
			return true
		}
	}
	return len(p.Files) > 0
}

// Persistable returns a copy of the payload with runtime-only appState keys
// stripped. The receiver is left untouched: the widget still owns its live maps.
func (p *ScenePayload) Persistable() *ScenePayload {
	out := EmptyScene()

	out.Elements = append(out.Elements, p.Elements...)

	for k, v := range p.AppState {
		if _, runtime := runtimeAppStateKeys[k]; runtime {
			continue
		}
		out.AppState[k] = v
	}

	for k, v := range p.Files {
		out.Files[k] = v
	}

	return out
}
