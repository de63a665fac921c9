package matching

import "strings"

// DefaultRecommendationThreshold is the dimension score below which a
// coaching recommendation is emitted.
const DefaultRecommendationThreshold = 75.0

// DefaultLocale is used when the caller's language tag has no catalog.
const DefaultLocale = "en"

type catalogKey struct {
	dim  Dimension
	lang string
}

// recommendationCatalog holds the fixed, localized recommendation
// strings keyed by (dimension, language). The "positive" entries are
// returned when no dimension falls below the threshold.
var recommendationCatalog = map[catalogKey]string{
	{DimensionHarmony, "en"}:     "Practice group-first working styles: shadow a cross-functional team and observe how disagreements are raised indirectly.",
	{DimensionImprovement, "en"}: "Adopt a continuous-improvement routine: keep a weekly kaizen log of one process you streamlined.",
	{DimensionService, "en"}:     "Build service orientation: take a customer-facing rotation or role-play support scenarios with a mentor.",
	{DimensionDedication, "en"}:  "Demonstrate follow-through: pick one long-running task and report progress on it consistently for a month.",
	{DimensionConsensus, "en"}:   "Learn nemawashi: before proposing a change, collect input one-on-one from every stakeholder first.",

	{DimensionHarmony, "id"}:     "Latih gaya kerja yang mengutamakan kelompok: amati bagaimana tim lintas fungsi menyampaikan perbedaan pendapat secara halus.",
	{DimensionImprovement, "id"}: "Terapkan rutinitas perbaikan berkelanjutan: catat satu proses yang Anda sederhanakan setiap minggu.",
	{DimensionService, "id"}:     "Bangun orientasi layanan: ambil rotasi yang berhadapan dengan pelanggan atau berlatih skenario dukungan bersama mentor.",
	{DimensionDedication, "id"}:  "Tunjukkan konsistensi: pilih satu tugas jangka panjang dan laporkan kemajuannya secara rutin selama sebulan.",
	{DimensionConsensus, "id"}:   "Pelajari nemawashi: sebelum mengusulkan perubahan, kumpulkan masukan satu per satu dari semua pemangku kepentingan.",

	{DimensionHarmony, "ja"}:     "和を重んじる働き方を身につけましょう。部門横断チームに同行し、意見の相違がどう伝えられるかを観察してください。",
	{DimensionImprovement, "ja"}: "改善の習慣を取り入れましょう。毎週、効率化した業務をひとつ改善ログに記録してください。",
	{DimensionService, "ja"}:     "サービス志向を磨きましょう。顧客対応の業務を経験するか、メンターと応対シナリオを練習してください。",
	{DimensionDedication, "ja"}:  "粘り強さを示しましょう。長期タスクをひとつ選び、一か月間継続的に進捗を報告してください。",
	{DimensionConsensus, "ja"}:   "根回しを学びましょう。変更を提案する前に、関係者全員から個別に意見を集めてください。",
}

var positiveRecommendation = map[string]string{
	"en": "Strong cultural alignment across all dimensions. Proceed to interview and focus on role-specific depth.",
	"id": "Kesesuaian budaya kuat di semua dimensi. Lanjutkan ke wawancara dan fokus pada kedalaman peran.",
	"ja": "全ての面で高い文化適合性が見られます。面接に進み、職務固有のスキルを確認してください。",
}

// Recommender maps dimension scores to a deterministic, ordered list of
// localized recommendation strings.
type Recommender struct {
	threshold float64
}

// NewRecommender builds a Recommender; a non-positive threshold falls
// back to the default.
func NewRecommender(threshold float64) *Recommender {
	if threshold <= 0 {
		threshold = DefaultRecommendationThreshold
	}
	return &Recommender{threshold: threshold}
}

// Recommend returns one entry per dimension below the threshold, in
// AllDimensions order, or the single positive affirmation when every
// dimension is at or above it. The result is never empty.
func (r *Recommender) Recommend(dims DimensionScores, lang string) []string {
	lang = normalizeLocale(lang)

	var out []string
	for _, dim := range AllDimensions {
		if dims.Value(dim) < r.threshold {
			out = append(out, recommendationCatalog[catalogKey{dim, lang}])
		}
	}
	if len(out) == 0 {
		out = []string{positiveRecommendation[lang]}
	}
	return out
}

// normalizeLocale reduces a BCP 47 tag to its primary subtag and falls
// back to the default locale for languages the catalog does not carry.
func normalizeLocale(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	if _, ok := positiveRecommendation[tag]; !ok {
		return DefaultLocale
	}
	return tag
}
