package services

import "github.com/ersonp/movement-core/internal/domain/entities"

// MediaRequest selects a movement's media, shared assets included. Every
// non-empty filter must hold for an asset to be listed.
type MediaRequest struct {
	MovementID       string
	EntityIDFilter   string
	PracticeIDFilter string
	EventIDFilter    string
	TextIDFilter     string
}

// MediaItem is one asset with its resolved links.
type MediaItem struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	URI         string     `json:"uri"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Tags        []string   `json:"tags"`
	Entities    []NamedRef `json:"entities"`
	Practices   []NamedRef `json:"practices"`
	Events      []NamedRef `json:"events"`
	Texts       []TextLink `json:"texts"`
}

// MediaGallery is the media listing of a movement.
type MediaGallery struct {
	Items []MediaItem `json:"items"`
}

func (r MediaRequest) matches(m entities.MediaAsset) bool {
	for _, f := range []struct {
		want string
		ids  []string
	}{
		{r.EntityIDFilter, m.LinkedEntityIDs},
		{r.PracticeIDFilter, m.LinkedPracticeIDs},
		{r.EventIDFilter, m.LinkedEventIDs},
		{r.TextIDFilter, m.LinkedTextIDs},
	} {
		if f.want != "" && !contains(f.ids, f.want) {
			return false
		}
	}
	return true
}

// BuildMediaGallery lists the movement's media with their links resolved.
func BuildMediaGallery(ds *entities.Dataset, req MediaRequest) *MediaGallery {
	entityIndex := BuildIndex(ds.Entities)
	practiceIndex := BuildIndex(ds.Practices)
	eventIndex := BuildIndex(ds.Events)
	textIndex := BuildIndex(ds.Texts)

	items := make([]MediaItem, 0)
	for _, m := range ScopedTo(ds.Media, req.MovementID, true) {
		if !req.matches(m) {
			continue
		}
		items = append(items, MediaItem{
			ID:          m.ID,
			Kind:        m.Kind,
			URI:         m.URI,
			Title:       m.Title,
			Description: m.Description,
			Tags:        orEmpty(m.Tags),
			Entities:    resolve(m.LinkedEntityIDs, entityIndex, entityNamed),
			Practices:   resolve(m.LinkedPracticeIDs, practiceIndex, practiceNamed),
			Events:      resolve(m.LinkedEventIDs, eventIndex, eventNamed),
			Texts:       resolve(m.LinkedTextIDs, textIndex, textLink),
		})
	}

	return &MediaGallery{Items: items}
}
