package postprocess

import "regexp"

// chromeAttrPattern matches doc-site chrome signals in a class/id (§4.6 step 4).
var chromeAttrPattern = regexp.MustCompile(`(?i)toc|table[-_ ]of[-_ ]contents|on[-_ ]this[-_ ]page|breadcrumbs?|sidebar|sidenav|navigation|page[-_ ]nav|pagination|pager|edit[-_ ]on[-_ ]github|edit[-_ ]this[-_ ]page`)

// chromeTextPattern matches doc-site chrome boilerplate phrases (§4.6 step 5).
var chromeTextPattern = regexp.MustCompile(`(?i)edit on github|ask about this page|copy for llm`)

// conditionalCommentPattern matches an IE conditional comment, both nesting
// variants, at the raw-string level (§4.6 step 1).
var conditionalCommentPattern = regexp.MustCompile(`(?is)<!--\s*\[if[^\]]*\]>.*?<!\[endif\]\s*-->`)

// chromeAttrTags are the tags step 4 inspects.
var chromeAttrTags = map[string]bool{"nav": true, "aside": true, "div": true, "section": true, "ul": true, "ol": true}

// chromeTextTags are the tags step 5 inspects.
var chromeTextTags = map[string]bool{"div": true, "p": true, "span": true, "a": true, "li": true}

// emptyNodeTags are the tags step 6 inspects.
var emptyNodeTags = map[string]bool{"div": true, "p": true, "span": true, "section": true, "article": true, "aside": true, "nav": true, "header": true, "footer": true}

// linkDensityTags are the tags step 7 inspects.
var linkDensityTags = map[string]bool{"div": true, "p": true, "section": true, "article": true, "aside": true, "nav": true, "li": true}

// patternStripTags are the tags step 8 inspects.
var patternStripTags = map[string]bool{"div": true, "p": true, "span": true, "section": true, "article": true, "aside": true, "nav": true, "header": true, "footer": true}
