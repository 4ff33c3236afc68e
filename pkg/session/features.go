package session

// FeatureColumns names each value of a Features row, in order
var FeatureColumns = [...]string{
	"carta_1", "carta_2", "num_rivales", "mano_preflop",
	"flop_1", "flop_2", "flop_3", "mano_flop",
	"turn", "mano_turn",
	"river", "mano_river",
	"carta_final_1", "carta_final_2", "carta_final_3", "carta_final_4", "carta_final_5",
}

// Features is the numeric description of a completed hand handed to a Predictor.
// Cards are encoded by their identifier and categories by their numeric value.
// The five final cards appear in the order they were entered, not by strength.
type Features [len(FeatureColumns)]int

// Map returns the features keyed by column name
func (f Features) Map() map[string]int {
	m := make(map[string]int, len(f))
	for i, name := range FeatureColumns {
		m[name] = f[i]
	}

	return m
}

// Features builds the feature row. The river must have been dealt.
func (s *Session) Features() (Features, error) {
	if s.Street() != River {
		return Features{}, ErrNotEnoughCommunity
	}

	streets, err := s.Streets()
	if err != nil {
		return Features{}, err
	}

	cards := s.Cards()
	community := cards[holeCards:]
	var f Features

	f[0] = s.hole[0].ID()
	f[1] = s.hole[1].ID()
	f[2] = s.Opponents
	f[3] = int(s.Preflop())

	f[4] = community[0].ID()
	f[5] = community[1].ID()
	f[6] = community[2].ID()
	f[7] = int(streets[0].Best.Category)

	f[8] = community[3].ID()
	f[9] = int(streets[1].Best.Category)

	f[10] = community[4].ID()
	f[11] = int(streets[2].Best.Category)

	// the final hand keeps the order the cards were entered in, hole cards first
	final := streets[2].Best.Cards
	i := 12
	for _, c := range cards {
		if final.HasCard(c) {
			f[i] = c.ID()
			i++
		}
	}

	return f, nil
}
