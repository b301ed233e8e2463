// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/avolkov/logmark/internal/locale"
	"github.com/avolkov/logmark/pkg/types"
)

// datePrefix matches filenames of the form "YYYY-MM-DD - Title".
var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} - (.+)$`)

// CleanTitle strips a leading date prefix from an output basename. Names
// that do not match the pattern are returned unchanged.
func CleanTitle(base string) string {
	if m := datePrefix.FindStringSubmatch(base); m != nil {
		return m[1]
	}
	return base
}

// expandTemplate replaces {name} placeholders with their values. Template
// syntax is part of the user-facing config format, so it stays as plain
// brace substitution rather than text/template.
func expandTemplate(tmpl string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// quoteLines prefixes every interior line with the blockquote marker so
// multi-line text stays inside a collapsible block.
func quoteLines(s string) string {
	return strings.ReplaceAll(s, "\n", "\n> ")
}

// renderFrontmatter expands the frontmatter template. The source file's
// modification stamp serves as both cdate and mdate since true creation
// time is unavailable.
func renderFrontmatter(tmpl, title, stamp string) string {
	return strings.TrimSpace(expandTemplate(tmpl, map[string]string{
		"title": title,
		"cdate": stamp,
		"mdate": stamp,
	}))
}

// renderMetadataTable builds the run-settings table. Model and web-search
// rows always appear; temperature, top-P, and top-K rows render only when
// the source carries them.
func renderMetadataTable(rs *types.RunSettings, loc locale.MetadataLabels) string {
	var b strings.Builder
	b.WriteString("| " + loc.HeaderParameter + " | " + loc.HeaderValue + " |\n")
	b.WriteString("| :--- | :--- |\n")
	b.WriteString("| " + loc.Model + " | `" + rs.ModelName() + "` |")

	if rs.Temperature != nil {
		b.WriteString("\n| " + loc.Temperature + " | `" + formatFloat(*rs.Temperature) + "` |")
	}
	if rs.TopP != nil {
		b.WriteString("\n| " + loc.TopP + " | `" + formatFloat(*rs.TopP) + "` |")
	}
	if rs.TopK != nil {
		b.WriteString("\n| " + loc.TopK + " | `" + formatFloat(*rs.TopK) + "` |")
	}

	search := loc.SearchDisabled
	if rs.SearchEnabled() {
		search = loc.SearchEnabled
	}
	b.WriteString("\n| " + loc.WebSearch + " | " + search + " |")
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatGrounding renders the collapsible web-search sources block: the
// queries as inline code, then the numbered source links. A source title
// falls back to the URI's hostname, or a localized placeholder when no
// URI exists.
func formatGrounding(g *types.Grounding, loc locale.GroundingLabels) string {
	lines := []string{"> [!info]- " + loc.SpoilerHeader}

	if len(g.WebSearchQueries) > 0 {
		lines = append(lines, "> "+loc.QueriesHeader)
		for _, q := range g.WebSearchQueries {
			lines = append(lines, "> - `"+q+"`")
		}
	}

	if len(g.GroundingSources) > 0 {
		if len(g.WebSearchQueries) > 0 {
			lines = append(lines, ">")
		}
		lines = append(lines, "> "+loc.SourcesHeader)
		for i, src := range g.GroundingSources {
			num := src.ReferenceNumber
			if num == 0 {
				num = i + 1
			}
			lines = append(lines, "> "+strconv.Itoa(num)+". ["+sourceTitle(src, loc)+"]("+src.URI+")")
		}
	}
	return strings.Join(lines, "\n")
}

func sourceTitle(src types.GroundingSource, loc locale.GroundingLabels) string {
	if src.URI == "" {
		return loc.SourcePlaceholder
	}
	if src.Title != "" {
		return src.Title
	}
	if u, err := url.Parse(src.URI); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return src.URI
}

// assemble joins the head blocks (frontmatter, title, metadata table) with
// blank lines and appends the turns separated by horizontal rules.
func assemble(head, turns []string) string {
	doc := strings.Join(head, "\n\n")
	if len(turns) > 0 {
		doc += "\n\n" + strings.Join(turns, "\n\n***\n\n")
	}
	return doc
}

// renderTurn joins a turn's header and non-empty block texts with blank
// lines. A turn with no content renders to "" and is omitted entirely.
func renderTurn(header string, blocks []Block) string {
	var texts []string
	for _, b := range blocks {
		if b.Text != "" {
			texts = append(texts, b.Text)
		}
	}
	if len(texts) == 0 {
		return ""
	}
	return header + "\n\n" + strings.Join(texts, "\n\n")
}
