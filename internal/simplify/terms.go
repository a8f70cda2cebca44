// Package simplify rewrites job description text for readability: recognized
// jargon terms get inline plain-language annotations and overlong sentences
// are split into shorter fragments. Nothing is removed, only annotated and
// fragmented.
package simplify

// jargonTerms maps jargon phrases to plain-language explanations written for
// neurodivergent readers. Curated and static; matching is case-insensitive on
// word boundaries.
var jargonTerms = map[string]string{
	"frontend development": "creating the parts of websites and apps that you can see and interact with directly, like buttons and menus",
	"backend development":  "building the behind-the-scenes systems that make websites and apps work, like saving your information",
	"full-stack":           "being able to work on both the visible parts of websites/apps AND the behind-the-scenes systems",
	"API":                  "a set of rules that lets different computer programs talk to each other, like how apps on your phone can share information",
	"cloud computing":      "using computers that are somewhere else on the internet instead of your own computer",
	"agile methodology":    "a way of working where big projects are broken down into smaller, manageable pieces",
	"REST API":             "a standard way for web programs to send and receive information, like how your weather app gets updates",
	"database":             "a digital filing cabinet where information is stored and organized",
	"version control":      "keeping track of all changes made to code, like having an undo button for everything",
	"deployment":           "the process of making a website or app available for people to use",
	"debugging":            "finding and fixing problems in code, like being a detective",
	"UI/UX":                "making websites and apps easy and enjoyable to use",
	"scalable":             "able to handle more people using it without slowing down or breaking",
	"optimization":         "making something work faster and better",
	"framework":            "a pre-built set of tools that makes creating websites or apps easier",
	"implementation":       "turning an idea into a real, working program",
	"JavaScript":           "a programming language that makes websites interactive",
	"TypeScript":           "a more organized version of JavaScript that helps catch mistakes early",
	"React":                "a tool for building website interfaces that respond quickly to user actions",
	"Node.js":              "a way to use JavaScript for backend (behind-the-scenes) programming",
	"AWS":                  "Amazon's cloud computing service that provides internet-based computing resources",
	"Azure":                "Microsoft's cloud computing service, similar to AWS",
	"agile":                "a flexible way of working where tasks are broken into small, manageable pieces",
}
