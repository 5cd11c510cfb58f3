package factory

import "github.com/mesh-intelligence/finplan/pkg/types"

// Goal types accepted by NewRecommendationCreator.
const (
	GoalTravel = "travel"
	GoalCar    = "car"
	GoalHome   = "home"
)

type recommendation struct {
	goal    string
	details string
}

func (r recommendation) GoalType() string { return r.goal }
func (r recommendation) Details() string  { return r.details }

// TravelRecommendation advises a monthly amount for a trip.
type TravelRecommendation struct{ recommendation }

// CarRecommendation weighs saving against an auto loan.
type CarRecommendation struct{ recommendation }

// HomeRecommendation points at a mortgage plan.
type HomeRecommendation struct{ recommendation }

// RecommendationCreator instantiates advice for one goal type.
type RecommendationCreator interface {
	CreateRecommendation() types.Recommendation
}

type TravelRecommendationCreator struct{}

func (TravelRecommendationCreator) CreateRecommendation() types.Recommendation {
	return TravelRecommendation{recommendation{GoalTravel, "Save $500 per month to achieve your travel goal."}}
}

type CarRecommendationCreator struct{}

func (CarRecommendationCreator) CreateRecommendation() types.Recommendation {
	return CarRecommendation{recommendation{GoalCar, "Save $300 per month or explore auto loan options for your car."}}
}

type HomeRecommendationCreator struct{}

func (HomeRecommendationCreator) CreateRecommendation() types.Recommendation {
	return HomeRecommendation{recommendation{GoalHome, "Consider a mortgage plan for your $100,000 home goal."}}
}

var recommendationCreators = map[string]RecommendationCreator{
	GoalTravel: TravelRecommendationCreator{},
	GoalCar:    CarRecommendationCreator{},
	GoalHome:   HomeRecommendationCreator{},
}

// GoalTypes lists the accepted goal types.
func GoalTypes() []string {
	return []string{GoalTravel, GoalCar, GoalHome}
}

// NewRecommendationCreator returns the creator for goal.
// Returns a *types.UnknownVariantError for goals outside GoalTypes.
func NewRecommendationCreator(goal string) (RecommendationCreator, error) {
	c, ok := recommendationCreators[goal]
	if !ok {
		return nil, &types.UnknownVariantError{Kind: "goal", Value: goal}
	}
	return c, nil
}

// GenerateRecommendation creates a recommendation with c and returns its text.
func GenerateRecommendation(c RecommendationCreator) string {
	return c.CreateRecommendation().Details()
}
