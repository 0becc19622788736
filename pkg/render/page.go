package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/melba-ui/melba/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS blocks.
	Styles []string

	// Scripts contains script tags to include at the end of the body.
	Scripts []ScriptTag

	// SessionID is the session identifier the client presents when it
	// opens its WebSocket.
	SessionID string

	// ClientScript is the path to the thin client JavaScript.
	// Defaults to "/melba/client.js" if not specified.
	ClientScript string

	// Lang is the language attribute for the html element.
	// Defaults to "en".
	Lang string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Module bool   // type="module"
	Inline string // inline script content
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}

	if err := r.renderHead(w, page); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}

	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}

	for _, script := range page.Scripts {
		if err := renderScriptTag(w, script); err != nil {
			return err
		}
	}

	if err := r.renderBootstrap(w, page); err != nil {
		return err
	}

	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<head>\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "  <meta charset=\"utf-8\">\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n"); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}

	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, "  <link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href)); err != nil {
			return err
		}
	}

	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}

// renderBootstrap emits the session bootstrap and the thin client
// script. The bootstrap object is what the client reads to open its
// WebSocket back to the session.
func (r *Renderer) renderBootstrap(w io.Writer, page PageData) error {
	if page.SessionID == "" {
		return nil
	}

	boot, err := json.Marshal(map[string]string{
		"sessionId": page.SessionID,
	})
	if err != nil {
		return fmt.Errorf("marshal bootstrap: %w", err)
	}

	if _, err := fmt.Fprintf(w, "<script>window.__MELBA__ = %s;</script>\n", boot); err != nil {
		return err
	}

	clientScript := page.ClientScript
	if clientScript == "" {
		clientScript = "/melba/client.js"
	}
	_, err = fmt.Fprintf(w, "<script src=\"%s\" defer></script>\n", escapeAttr(clientScript))
	return err
}

// renderScriptTag renders a single script element.
func renderScriptTag(w io.Writer, script ScriptTag) error {
	if script.Inline != "" {
		_, err := fmt.Fprintf(w, "<script>%s</script>\n", script.Inline)
		return err
	}

	attrs := ""
	if script.Module {
		attrs += ` type="module"`
	}
	if script.Defer {
		attrs += " defer"
	}
	_, err := fmt.Fprintf(w, "<script src=\"%s\"%s></script>\n", escapeAttr(script.Src), attrs)
	return err
}
