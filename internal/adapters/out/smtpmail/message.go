package smtpmail

import (
	"fmt"
	"mime"
	"strings"
)

// messageBoundary separates the multipart alternatives. A fixed boundary
// is safe here because both bodies are generated by this service and
// never embed raw user uploads.
const messageBoundary = "foodibot-alternative-boundary"

// buildMessage assembles a multipart/alternative MIME message with the
// plain-text part first, so clients that cannot render HTML fall back to
// text.
func buildMessage(from, to, subject, textBody, htmlBody string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", messageBoundary)
	b.WriteString("\r\n")

	writePart(&b, "text/plain", textBody)
	writePart(&b, "text/html", htmlBody)
	fmt.Fprintf(&b, "--%s--\r\n", messageBoundary)

	return b.String()
}

func writePart(b *strings.Builder, contentType, body string) {
	fmt.Fprintf(b, "--%s\r\n", messageBoundary)
	fmt.Fprintf(b, "Content-Type: %s; charset=utf-8\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
}
