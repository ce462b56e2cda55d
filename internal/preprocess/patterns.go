package preprocess

import "regexp"

// PositivePattern rescues an otherwise-unlikely element whose id or class
// also carries a positive signal.
var PositivePattern = regexp.MustCompile(`(?i)article|body|content|entry|hentry|h-entry|main|page|post|text|blog|story|tweet`)

// UnlikelyPattern flags chrome-ish id/class tokens for removal.
var UnlikelyPattern = regexp.MustCompile(`(?i)banner|breadcrumbs?|combx|comment|community|disqus|extra|foot|header|menu|related|remark|rss|shoutbox|sidebar|sponsor|ad-break|agegate|pagination|pager|popup`)

// hiddenStylePattern matches an inline style hiding the element from layout.
var hiddenStylePattern = regexp.MustCompile(`(?i)display\s*:\s*none|visibility\s*:\s*hidden`)
