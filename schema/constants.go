package schema

// DatabaseBackend identifies a cache storage backend.
type DatabaseBackend string

// Supported cache backends.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// OutputFormat identifies a card output format.
type OutputFormat string

// Supported output formats.
const (
	TextOut OutputFormat = "text"
	JSONOut OutputFormat = "json"
)

// Public event types from the event feed enumeration.
const (
	PushEvent          = "PushEvent"
	PullRequestEvent   = "PullRequestEvent"
	IssuesEvent        = "IssuesEvent"
	CreateEvent        = "CreateEvent"
	DeleteEvent        = "DeleteEvent"
	WatchEvent         = "WatchEvent"
	ForkEvent          = "ForkEvent"
	IssueCommentEvent  = "IssueCommentEvent"
	ReviewEvent        = "PullRequestReviewEvent"
	ReviewCommentEvent = "PullRequestReviewCommentEvent"
)

// MonthNames in calendar order, as used by the monthly contribution buckets.
var MonthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// DayNames indexed by time.Weekday (Sunday first).
var DayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekOrder is the display order for the weekday heatmap (Monday first).
var WeekOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// LangColors maps language names to their conventional chart colors.
var LangColors = map[string]string{
	"JavaScript": "#f1e05a", "TypeScript": "#3178c6", "Python": "#3572A5",
	"Java": "#b07219", "C++": "#f34b7d", "C": "#555555",
	"C#": "#178600", "Go": "#00ADD8", "Rust": "#dea584",
	"Ruby": "#701516", "PHP": "#4F5D95", "Swift": "#ffac45",
	"Kotlin": "#A97BFF", "HTML": "#e34c26", "CSS": "#563d7c",
	"Shell": "#89e051", "Vue": "#41b883", "Dart": "#00B4AB",
	"Lua": "#000080", "Scala": "#c22d40", "R": "#198CE7",
	"Perl": "#0298c3", "Haskell": "#5e5086", "Elixir": "#6e4a7e",
	"Clojure": "#db5855", "Objective-C": "#438eff", "SCSS": "#c6538c",
	"Jupyter Notebook": "#DA5B0B",
}

// DefaultLangColor is used for languages without a known chart color.
const DefaultLangColor = "#8b949e"
