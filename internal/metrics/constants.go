package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Session metric names
const (
	MetricNameDaysSimulated = "days_simulated_total"
)

// Field metric names
const (
	MetricNameCropsPlanted   = "crops_planted_total"
	MetricNameCropsHarvested = "crops_harvested_total"
)

// Commerce metric names
const (
	MetricNameItemsBought = "items_bought_total"
	MetricNameItemsSold   = "items_sold_total"
	MetricNameMoneyEarned = "money_earned_total"
	MetricNameMoneySpent  = "money_spent_total"
)

// Cow metric names
const (
	MetricNameCowsGenerated = "cows_generated_total"
	MetricNameCowsSold      = "cows_sold_total"
	MetricNameCowsMilked    = "cows_milked_total"
)

// Market metric names
const (
	MetricNamePriceEventsTriggered = "price_events_triggered_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextDaysSimulated        = "Total number of days processed"
	HelpTextCropsPlanted         = "Total number of seeds planted"
	HelpTextCropsHarvested       = "Total number of crops harvested"
	HelpTextItemsBought          = "Total number of items bought from the shop"
	HelpTextItemsSold            = "Total number of items sold"
	HelpTextMoneyEarned          = "Total money earned in cents"
	HelpTextMoneySpent           = "Total money spent in cents"
	HelpTextCowsGenerated        = "Total number of cows generated for offer"
	HelpTextCowsSold             = "Total number of cows sold"
	HelpTextCowsMilked           = "Total number of cows milked"
	HelpTextPriceEventsTriggered = "Total number of price crashes and surges triggered"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelItem   = "item"
	LabelEvent  = "event"
	LabelSource = "source"
)

// Price event label values
const (
	EventTypeCrash = "crash"
	EventTypeSurge = "surge"
)
