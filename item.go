package tldr

// ItemKind classifies records handed to the launcher UI.
type ItemKind string

const (
	ItemKeyword ItemKind = "keyword"
	ItemCommand ItemKind = "command"
	ItemURL     ItemKind = "url"
	ItemError   ItemKind = "error"
)

// Targets of the keyword items.
const (
	TargetSearch = "search"
	TargetUpdate = "update"
)

// Item is one row shown by the launcher.
type Item struct {
	Kind        ItemKind `json:"kind"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Target      string   `json:"target"`
}

// Actions a user can apply to an item.
const (
	ActionCopy          = "copy"
	ActionBrowse        = "browse"
	ActionBrowsePrivate = "browse_private"
)

// EffectKind names what the host should do after an action.
type EffectKind string

const (
	EffectNone      EffectKind = "none"
	EffectCopy      EffectKind = "copy"
	EffectOpenURL   EffectKind = "open_url"
	EffectRefreshed EffectKind = "refreshed"
)

// Effect is the outcome of executing an action. The host performs it.
type Effect struct {
	Kind    EffectKind `json:"kind"`
	Value   string     `json:"value"`
	Private bool       `json:"private"`
}
