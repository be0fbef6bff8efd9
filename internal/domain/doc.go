// Package domain models cooked-food storage scenarios and the heuristic that
// fabricates their ground-truth freshness labels.
//
// # Records
//
// A FoodRecord describes one storage scenario: two numeric features (hours in
// storage, hours left out before storing) and seven categorical descriptors
// (storage condition, container, food type, moisture, cooking method,
// texture, smell). Those nine fields are the trained-feature subset — the
// only inputs the classifier ever sees.
//
// City, region, ambient temperature and humidity are generation-time context.
// They bias the synthetic climate draw, feed the scorer, and appear in the
// dataset for display, but are excluded from training so a prediction caller
// never has to supply them.
//
// # Climate presets
//
// Cities are grouped into Indian climate regions, each with a typical
// temperature and humidity envelope:
//
//	North:     10–25°C, 20–80%
//	South:     24–34°C, 50–90%
//	West:      23–35°C, 50–90%
//	East:      22–32°C, 50–95%
//	Central:   20–32°C, 30–85%
//	NorthEast: 15–27°C, 60–98%
//
// The table is fixed at build time with no external source. Lookups for
// unknown cities fail with [UnknownCityError].
//
// # Spoilage scoring
//
// Ground-truth labels come from a weighted sum of independent risk
// contributions, each monotonic in its driving factor. The strongest single
// indicators are smell descriptors (sour/fermented +2.5) and refrigeration
// (−2.3); time terms are piecewise steps so that very long storage dominates.
// The full rule list lives in [Contributions] so every term can be audited
// and tested on its own.
//
// [ClassifyScore] maps the summed score to an ordinal label:
//
//	score < −0.8   Fresh
//	score <  1.8   Medium
//	otherwise      Spoiled
//
// Scoring is deterministic and side-effect free. It exists only to fabricate
// synthetic training labels; the score itself is never exposed to the trained
// classifier.
package domain
