package form

import (
	"strings"

	"github.com/gosimple/slug"

	"github.com/sbelmont/intake/internal/domain"
)

// maxCustomItemLen caps custom equipment input length, in runes.
const maxCustomItemLen = 50

// SelectTier applies the exclusive tier choice. Selecting the already
// selected tier clears the selection entirely. Switching to any tier other
// than basic-equipment discards previously chosen items; that data loss is
// intentional, since items only make sense under the basic tier.
func (s *Store) SelectTier(tier domain.EquipmentTier) {
	s.clearError(FieldEquipment)

	if s.data.Tier == tier {
		s.data.Tier = ""
		s.data.EquipmentItems = nil
		return
	}
	s.data.Tier = tier
	if tier != domain.TierBasic {
		s.data.EquipmentItems = nil
	}
}

// ToggleItem adds or removes a catalog item slug. A no-op unless the
// basic tier is currently selected.
func (s *Store) ToggleItem(itemSlug string) {
	if s.data.Tier != domain.TierBasic {
		return
	}
	for i, it := range s.data.EquipmentItems {
		if it == itemSlug {
			s.data.EquipmentItems = append(s.data.EquipmentItems[:i], s.data.EquipmentItems[i+1:]...)
			return
		}
	}
	s.data.EquipmentItems = append(s.data.EquipmentItems, itemSlug)
}

// RemoveItem removes an item by exact slug match, catalog or custom.
func (s *Store) RemoveItem(itemSlug string) {
	for i, it := range s.data.EquipmentItems {
		if it == itemSlug {
			s.data.EquipmentItems = append(s.data.EquipmentItems[:i], s.data.EquipmentItems[i+1:]...)
			return
		}
	}
}

// SetItemDraft updates the custom-item input buffer.
func (s *Store) SetItemDraft(raw string) { s.itemDraft = raw }

// ItemDraft returns the custom-item input buffer.
func (s *Store) ItemDraft() string { return s.itemDraft }

// CanAddCustomItem reports whether the draft holds anything addable; the
// add control is disabled when it does not.
func (s *Store) CanAddCustomItem() bool {
	return strings.TrimSpace(s.itemDraft) != ""
}

// AddCustomItem normalizes the draft into a slug and appends it. All
// rejection is silent: empty or over-length input leaves the draft in
// place for editing, while a case-insensitive duplicate just clears the
// draft. On success the slug is appended in insertion order and the draft
// cleared. Never returns an error; the control is advisory.
func (s *Store) AddCustomItem() {
	if s.data.Tier != domain.TierBasic {
		return
	}
	trimmed := strings.TrimSpace(s.itemDraft)
	if trimmed == "" || len([]rune(trimmed)) > maxCustomItemLen {
		return
	}

	normalized := slug.Make(trimmed)
	if normalized == "" || s.data.HasItem(normalized) {
		s.itemDraft = ""
		return
	}

	s.data.EquipmentItems = append(s.data.EquipmentItems, normalized)
	s.itemDraft = ""
}
