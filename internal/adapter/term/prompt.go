package term

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readLine prompts and returns a trimmed line. io.EOF is passed through so
// the caller can treat end of input as quit.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readDefault prompts with a default shown in brackets; an empty answer
// keeps the default.
func (c *Console) readDefault(prompt, def string) (string, error) {
	line, err := c.readLine(fmt.Sprintf("%s [%s]: ", prompt, def))
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// readPassword prompts without echoing when stdin is a terminal, falling
// back to a plain read otherwise (tests, pipes).
func (c *Console) readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return c.readLine(prompt)
	}
	fmt.Fprint(c.out, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// Confirm implements app.Confirmer. Only an explicit yes proceeds.
func (c *Console) Confirm(prompt string) bool {
	answer, err := c.readLine(prompt + " [y/N]: ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
