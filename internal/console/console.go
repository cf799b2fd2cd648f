// Package console is the line-oriented menu in front of the directories.
//
// It holds no domain rules: each menu item reads a few lines, calls one
// directory operation and prints the rendered result. The logged-in
// student or admin travels in an explicit Session value.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aanand-mishra/course-registration/internal/admin"
	"github.com/aanand-mishra/course-registration/internal/course"
	"github.com/aanand-mishra/course-registration/internal/enrollment"
	"github.com/aanand-mishra/course-registration/internal/student"
	"github.com/aanand-mishra/course-registration/internal/types"
	"github.com/aanand-mishra/course-registration/internal/utils/response"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// errBack unwinds one menu level.
var errBack = errors.New("back")

// Services are the directories the console drives.
type Services struct {
	Students *student.Directory
	Courses  *course.Catalog
	Ledger   *enrollment.Ledger
	Admins   *admin.Directory
}

// Session is the state of one console run.
type Session struct {
	Student *types.Student
	Admin   *types.Admin
}

// Console reads choices from in and writes menus and results to out.
type Console struct {
	svc Services
	in  *bufio.Reader
	out io.Writer
	log *slog.Logger
}

// New returns a console over the given streams.
func New(svc Services, in io.Reader, out io.Writer, log *slog.Logger) *Console {
	return &Console{
		svc: svc,
		in:  bufio.NewReader(in),
		out: out,
		log: log,
	}
}

// item is one numbered menu entry.
type item struct {
	label string
	run   func(*Session) error
}

// Run shows the main menu until the user exits or input ends.
func (c *Console) Run() error {
	c.println()
	c.println(titleStyle.Render("========================================"))
	c.println(titleStyle.Render("   COURSE REGISTRATION SYSTEM"))
	c.println(titleStyle.Render("========================================"))

	sess := &Session{}
	err := c.menu("", sess, []item{
		{"Student Portal", c.studentPortal},
		{"Admin Portal", c.adminPortal},
		{"Exit", back},
	})
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	c.println("\nThank you for using Course Registration System!")
	return nil
}

// menu loops over items until one returns errBack (consumed here) or a
// hard error such as io.EOF (propagated). Invalid choices re-prompt.
func (c *Console) menu(title string, sess *Session, items []item) error {
	for {
		if title != "" {
			c.section(title)
		}
		for i, it := range items {
			c.printf("%d. %s\n", i+1, it.label)
		}

		choice, err := c.choose()
		if err != nil {
			return err
		}
		if choice < 0 {
			continue
		}
		if choice < 1 || choice > len(items) {
			c.result(response.Fail("Invalid choice! Please try again."))
			continue
		}

		if err := items[choice-1].run(sess); err != nil {
			if errors.Is(err, errBack) {
				return nil
			}
			return err
		}
	}
}

// choose reads a menu number. Non-numeric input prints an error and
// yields -1.
func (c *Console) choose() (int, error) {
	line, err := c.prompt("Choose an option")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		c.result(response.Fail("Please enter a valid number."))
		return -1, nil
	}
	return n, nil
}

// prompt prints label and returns the trimmed next line.
func (c *Console) prompt(label string) (string, error) {
	line, err := c.promptRaw(label)
	return strings.TrimSpace(line), err
}

// promptRaw returns the next line untrimmed; passwords keep their spaces.
// Lines of any length are accepted. A final line without a newline is
// still returned; io.EOF comes on the following call.
func (c *Console) promptRaw(label string) (string, error) {
	c.printf("%s: ", label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (c *Console) section(title string) {
	c.println()
	c.println(sectionStyle.Render("========== " + title + " =========="))
}

func (c *Console) result(r response.Response) {
	c.println(r.String())
}

// failure renders err and logs it. Expected failures log at Info.
func (c *Console) failure(kind string, op string, err error) {
	if !response.Expected(err) {
		c.log.Error(op+" failed", slog.String("error", err.Error()))
	} else {
		c.log.Info(op+" rejected", slog.String("reason", err.Error()))
	}
	c.result(response.Failure(kind, err))
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// listing prints header then one line per record, or empty when there are
// none.
func listing[T any](c *Console, header, empty string, records []T, line func(T) string) {
	if len(records) == 0 {
		c.result(response.Fail("%s", empty))
		return
	}
	c.section(header)
	for _, r := range records {
		c.println(line(r))
	}
}
