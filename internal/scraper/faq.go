package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/entity"
)

const maxFAQs = 10

var (
	faqContainerTerms = []string{"accordion", "faq", "collaps", "toggle"}
	questionTerms     = []string{"question", "title", "header", "toggle"}
	answerTerms       = []string{"answer", "content", "body"}
	listItemTerms     = []string{"faq", "question", "help"}

	labelledQA       = regexp.MustCompile(`(?is)Q:\s*([^?]+\?)\s*A:`)
	labelledLongform = regexp.MustCompile(`(?is)Question:\s*([^?]+\?)\s*Answer:`)
	// Catch-all: any question mark, then the following run of text up to
	// the next question. Noisy on pages without real FAQ structure; it
	// only runs when every structural method came up empty.
	bareQuestion = regexp.MustCompile(`(?s)([^?]+\?)\s*([^?]+)`)
)

// faqMethod is one heuristic in the ordered cascade. Each runs only when
// every earlier method produced nothing.
type faqMethod func(doc *goquery.Document) []entity.FAQ

var faqMethods = []faqMethod{
	accordionFAQs,
	definitionListFAQs,
	headingFAQs,
	textPatternFAQs,
	listItemFAQs,
}

// ParseFAQPage runs the extraction cascade over one parsed page,
// deduplicates by normalized question preserving first-seen order, and
// caps the result at ten entries.
func ParseFAQPage(doc *goquery.Document) []entity.FAQ {
	var faqs []entity.FAQ
	for _, method := range faqMethods {
		faqs = method(doc)
		if len(faqs) > 0 {
			break
		}
	}
	return dedupeFAQs(faqs)
}

func dedupeFAQs(faqs []entity.FAQ) []entity.FAQ {
	unique := []entity.FAQ{}
	seen := map[string]bool{}
	for _, faq := range faqs {
		key := NormalizeQuestion(faq.Question)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, faq)
		if len(unique) == maxFAQs {
			break
		}
	}
	return unique
}

// classContainsAny reports whether the element's class attribute
// mentions any of the given terms.
func classContainsAny(sel *goquery.Selection, terms []string) bool {
	class, ok := sel.Attr("class")
	if !ok {
		return false
	}
	return containsAny(strings.ToLower(class), terms)
}

// Method 1: accordion/collapsible containers holding a question element
// and an answer element.
func accordionFAQs(doc *goquery.Document) []entity.FAQ {
	var faqs []entity.FAQ
	doc.Find("div, section").Each(func(_ int, item *goquery.Selection) {
		if !classContainsAny(item, faqContainerTerms) {
			return
		}
		question := firstTextWithClass(item, "h3, h4, h5, button, summary", questionTerms)
		answer := firstTextWithClass(item, "div, p", answerTerms)
		if question != "" && answer != "" {
			faqs = append(faqs, entity.FAQ{Question: question, Answer: answer})
		}
	})
	return faqs
}

func firstTextWithClass(item *goquery.Selection, selector string, terms []string) string {
	match := item.Find(selector).FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return classContainsAny(sel, terms)
	}).First()
	if match.Length() == 0 {
		return ""
	}
	return CleanText(match.Text())
}

// Method 2: definition lists, pairing each dt with its adjacent dd.
func definitionListFAQs(doc *goquery.Document) []entity.FAQ {
	var faqs []entity.FAQ
	doc.Find("dt").Each(func(_ int, dt *goquery.Selection) {
		dd := dt.NextFiltered("dd")
		if dd.Length() == 0 {
			return
		}
		question := CleanText(dt.Text())
		answer := CleanText(dd.Text())
		if question != "" && answer != "" {
			faqs = append(faqs, entity.FAQ{Question: question, Answer: answer})
		}
	})
	return faqs
}

// Method 3: h3/h4/h5 headings that read like questions, answered by the
// following paragraph or div.
func headingFAQs(doc *goquery.Document) []entity.FAQ {
	var faqs []entity.FAQ
	doc.Find("h3, h4, h5").Each(func(_ int, header *goquery.Selection) {
		question := CleanText(header.Text())
		if !strings.Contains(question, "?") {
			return
		}
		next := header.NextAllFiltered("p, div").First()
		if next.Length() == 0 {
			return
		}
		answer := CleanText(next.Text())
		if answer != "" {
			faqs = append(faqs, entity.FAQ{Question: question, Answer: answer})
		}
	})
	return faqs
}

// Method 4: labelled Q/A patterns in the page's visible text, falling
// back to the bare catch-all pattern.
func textPatternFAQs(doc *goquery.Document) []entity.FAQ {
	pageText := doc.Text()
	var faqs []entity.FAQ
	patterns := []*regexp.Regexp{labelledQA, labelledLongform}
	for _, pattern := range patterns {
		faqs = append(faqs, labelledFAQs(pattern, pageText)...)
	}
	if len(faqs) == 0 {
		faqs = matchFAQs(bareQuestion, pageText)
	}
	return faqs
}

// labelledFAQs pairs each labelled question with the text running from
// its answer label up to the next labelled question, or the end of the
// page. The pattern captures the question and consumes only the labels;
// answers are sliced out positionally so one pair never swallows the
// next pair's label.
func labelledFAQs(pattern *regexp.Regexp, pageText string) []entity.FAQ {
	matches := pattern.FindAllStringSubmatchIndex(pageText, -1)
	var faqs []entity.FAQ
	for i, m := range matches {
		end := len(pageText)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		question := CleanText(pageText[m[2]:m[3]])
		answer := CleanText(pageText[m[1]:end])
		if question != "" && answer != "" && len(answer) > 10 {
			faqs = append(faqs, entity.FAQ{Question: question, Answer: answer})
		}
	}
	return faqs
}

func matchFAQs(pattern *regexp.Regexp, pageText string) []entity.FAQ {
	var faqs []entity.FAQ
	for _, match := range pattern.FindAllStringSubmatch(pageText, -1) {
		question := CleanText(match[1])
		answer := CleanText(match[2])
		if question != "" && answer != "" && len(answer) > 10 {
			faqs = append(faqs, entity.FAQ{Question: question, Answer: answer})
		}
	}
	return faqs
}

// Method 5: list items whose class hints at FAQ content, split on the
// first question mark.
func listItemFAQs(doc *goquery.Document) []entity.FAQ {
	var faqs []entity.FAQ
	doc.Find("li, div").Each(func(_ int, item *goquery.Selection) {
		if !classContainsAny(item, listItemTerms) {
			return
		}
		text := CleanText(item.Text())
		if !strings.Contains(text, "?") || len(text) <= 20 {
			return
		}
		parts := strings.SplitN(text, "?", 2)
		if len(parts) != 2 {
			return
		}
		question := CleanText(parts[0] + "?")
		answer := CleanText(parts[1])
		if question != "" && answer != "" && len(answer) > 5 {
			faqs = append(faqs, entity.FAQ{Question: question, Answer: answer})
		}
	})
	return faqs
}
