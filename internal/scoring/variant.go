package scoring

// VariantSpec is metadata about a game variant.
type VariantSpec struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StorageKey  string `json:"storageKey"`
	TargetScore int    `json:"targetScore,omitempty"`
	QuickScores []int  `json:"quickScores"`
}

// Outcome is the result of a win evaluation.
type Outcome struct {
	Ended  bool
	Winner *Player // nil unless Ended and the roster is non-empty
}

// Rules is the per-variant strategy: which end of the ranking wins and
// when the game is over. Evaluate must be a pure function of the session
// state, safe to call redundantly.
type Rules interface {
	Spec() VariantSpec
	Ranking() RankOrder
	Evaluate(s *Session) Outcome
}

// variantRegistry holds all available variants.
var variantRegistry = make(map[string]Rules)

// RegisterVariant adds a variant to the registry.
func RegisterVariant(r Rules) {
	variantRegistry[r.Spec().ID] = r
}

// GetVariant retrieves a variant by id.
func GetVariant(id string) (Rules, bool) {
	r, ok := variantRegistry[id]
	return r, ok
}

// ListVariants returns the specs of all registered variants.
func ListVariants() []VariantSpec {
	specs := make([]VariantSpec, 0, len(variantRegistry))
	for _, r := range variantRegistry {
		specs = append(specs, r.Spec())
	}
	return specs
}

func init() {
	RegisterVariant(JokerenRules{})
	RegisterVariant(TienduizendRules{})
}
