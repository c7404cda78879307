package lpmodel

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/conflictmip/model"
)

// ParseProblem reads the minimal line-oriented problem format:
//
//	# comment
//	MIN | MAX
//	VAR <name> <lower> <upper> <INT|CONT> <objective-coeff>
//	ROW <name> <lower> <upper> <var-name>:<coeff> [<var-name>:<coeff> ...]
//
// lower/upper accept -inf/+inf. VAR lines must all precede the ROW lines
// that reference them. Returns a Model ready for its first Solve.
func ParseProblem(r io.Reader) (*Model, error) {
	sense := Minimize
	senseSet := false
	names := make(map[string]int)
	var vars []*model.Variable
	var constraints []*model.Constraint
	objective := make(map[int]float64)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "MIN", "MAX":
			if fields[0] == "MAX" {
				sense = Maximize
			}
			senseSet = true

		case "VAR":
			v, coeff, err := parseVarLine(fields, len(vars))
			if err != nil {
				return nil, err
			}
			names[v.Name] = v.Index
			vars = append(vars, v)
			if coeff != 0 {
				objective[v.Index] = coeff
			}

		case "ROW":
			c, err := parseRowLine(fields, len(constraints), names)
			if err != nil {
				return nil, err
			}
			constraints = append(constraints, c)
			for idx := range c.Coeffs {
				vars[idx].AddConstraint(c.Index)
			}

		default:
			return nil, fmt.Errorf("%w: unrecognized line %q", ErrMalformedProblem, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !senseSet {
		return nil, fmt.Errorf("%w: missing MIN/MAX directive", ErrMalformedProblem)
	}

	return New(vars, constraints, objective, sense), nil
}

func parseVarLine(fields []string, index int) (*model.Variable, float64, error) {
	if len(fields) != 6 {
		return nil, 0, fmt.Errorf("%w: VAR line wants 5 fields, got %d", ErrMalformedProblem, len(fields)-1)
	}
	name := fields[1]
	lower, err := parseBoundValue(fields[2])
	if err != nil {
		return nil, 0, err
	}
	upper, err := parseBoundValue(fields[3])
	if err != nil {
		return nil, 0, err
	}
	isInteger, err := parseKind(fields[4])
	if err != nil {
		return nil, 0, err
	}
	coeff, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: bad objective coefficient %q: %v", ErrMalformedProblem, fields[5], err)
	}

	return model.NewVariable(index, name, lower, upper, isInteger), coeff, nil
}

func parseRowLine(fields []string, index int, names map[string]int) (*model.Constraint, error) {
	if len(fields) < 5 {
		return nil, fmt.Errorf("%w: ROW line wants at least 4 fields", ErrMalformedProblem)
	}
	lower, err := parseBoundValue(fields[2])
	if err != nil {
		return nil, err
	}
	upper, err := parseBoundValue(fields[3])
	if err != nil {
		return nil, err
	}

	row := model.NewConstraint(index, lower, upper)
	for _, term := range fields[4:] {
		varName, coeffStr, ok := strings.Cut(term, ":")
		if !ok {
			return nil, fmt.Errorf("%w: malformed coefficient term %q", ErrMalformedProblem, term)
		}
		idx, known := names[varName]
		if !known {
			return nil, fmt.Errorf("%w: row references unknown variable %q", ErrMalformedProblem, varName)
		}
		coeff, err := strconv.ParseFloat(coeffStr, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad coefficient %q: %v", ErrMalformedProblem, coeffStr, err)
		}
		row.SetCoeff(idx, coeff)
	}
	if len(row.Coeffs) == 0 {
		return nil, ErrEmptyRow
	}
	return row, nil
}

func parseBoundValue(s string) (float64, error) {
	switch s {
	case "-inf":
		return math.Inf(-1), nil
	case "+inf", "inf":
		return math.Inf(1), nil
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad bound %q: %v", ErrMalformedProblem, s, err)
		}
		return v, nil
	}
}

func parseKind(s string) (bool, error) {
	switch s {
	case "INT":
		return true, nil
	case "CONT":
		return false, nil
	default:
		return false, fmt.Errorf("%w: variable kind must be INT or CONT, got %q", ErrMalformedProblem, s)
	}
}
