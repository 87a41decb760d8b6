package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/antroute/model"
)

var ErrBadToken = errors.New("bad route token")

// DefaultRoute is served when no route file is configured.
const DefaultRoute = ". . . |3 . >2 ."

func Load(path string) (*model.Route, error) {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("failed opening file: %s", err)
		return nil, err
	}
	defer file.Close()
	return read(file)
}

func Parse(s string) (*model.Route, error) {
	return read(strings.NewReader(s))
}

// read takes whitespace separated tokens, lines starting with '#' are
// comments:
//   .   empty
//   >N  open portal to N
//   |N  closed portal to N
func read(reader io.Reader) (*model.Route, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	steps := make([]model.Step, 0)
	line := 0

	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(s, "#") {
			continue
		}
		for col, token := range strings.Fields(s) {
			step, err := token2step(token)
			if err != nil {
				return nil, fmt.Errorf("line %d token %d %q: %w", line, col+1, token, err)
			}
			steps = append(steps, step)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	route := model.NewRoute(steps)
	if err := route.Validate(); err != nil {
		return nil, err
	}
	return route, nil
}

func token2step(token string) (model.Step, error) {
	switch token[0] {
	case '.':
		if len(token) != 1 {
			return model.Step{}, ErrBadToken
		}
		return model.Empty(), nil
	case '>', '|':
		d, err := strconv.Atoi(token[1:])
		if err != nil {
			return model.Step{}, ErrBadToken
		}
		if token[0] == '>' {
			return model.OpenPortal(d), nil
		}
		return model.ClosedPortal(d), nil
	default:
		return model.Step{}, ErrBadToken
	}
}

// Format writes the route back in the form read accepts.
func Format(r *model.Route) string {
	tokens := make([]string, 0, r.Len())
	for _, s := range r.Steps {
		switch s.Kind {
		case model.STEP_EMPTY:
			tokens = append(tokens, ".")
		case model.STEP_PORTAL:
			if s.State == model.PORTAL_OPEN {
				tokens = append(tokens, ">"+strconv.Itoa(s.Destination))
			} else {
				tokens = append(tokens, "|"+strconv.Itoa(s.Destination))
			}
		default:
			panic(s.Kind)
		}
	}
	return strings.Join(tokens, " ")
}
