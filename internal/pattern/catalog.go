package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/mathspeak/internal/model"
)

var (
	perWord      = regexp.MustCompile(`\bper\b`)
	percentValue = regexp.MustCompile(`(\d+)\s*(?:%|percent)\s+of`)
	radiusName   = regexp.MustCompile(`radius\s+([a-z0-9]+)`)
)

// DefaultPercent is used when a percent phrase carries no number.
const DefaultPercent = "20"

// catalog is evaluated top to bottom; the first matching rule wins.
var catalog = []Rule{
	newRule(model.PatternSum, buildSum,
		literal("sum of"), literal("total of"), literal("in all"), literal("combined")),
	newRule(model.PatternDifference, buildDifference,
		literal("difference of"), literal("how many more"), literal("how many less")),
	newRule(model.PatternProduct, buildProduct,
		literal("product of"), literal("times")),
	newRule(model.PatternQuotient, buildQuotient,
		literal("quotient of"), literal("divided by"), word("per")),
	newRule(model.PatternMoreThan, buildMoreThan,
		literal("more than")),
	newRule(model.PatternLessThan, buildLessThan,
		literal("less than")),
	newRule(model.PatternAtLeast, buildAtLeast,
		literal("at least"), literal("no less than")),
	newRule(model.PatternAtMost, buildAtMost,
		literal("at most"), literal("no more than")),
	newRule(model.PatternTwice, scaled("2", `"twice" → multiply by 2.`),
		literal("twice"), literal("double")),
	newRule(model.PatternTriple, scaled("3", `"triple" → multiply by 3.`),
		literal("thrice"), literal("triple")),
	newRule(model.PatternTimes, buildTimes,
		regex(`\b(\d+)\s*times\b`)),
	newRule(model.PatternSquare, power("2", `"square of" → raise to the power of 2.`),
		literal("square of"), literal("squared")),
	newRule(model.PatternCube, power("3", `"cube of" → raise to the power of 3.`),
		literal("cube of"), literal("cubed")),
	newRule(model.PatternSqrt, buildSqrt,
		literal("square root of")),
	newRule(model.PatternPercentOf, buildPercentOf,
		literal("% of"), literal("percent of")),
	newRule(model.PatternRatio, buildRatio,
		literal("ratio of")),
	newRule(model.PatternAreaCircle, buildAreaCircle,
		literal("area of a circle")),
	newRule(model.PatternPerimeterRect, buildPerimeterRect,
		literal("perimeter of a rectangle")),
	newRule(model.PatternFunction, buildFunction,
		literal("f of x"), literal("f(x)")),
	newRule(model.PatternDerivative, buildDerivative,
		literal("derivative of")),
}

// Catalog returns the rules in evaluation order.
func Catalog() []Rule {
	rules := make([]Rule, len(catalog))
	copy(rules, catalog)
	return rules
}

// PatternIDs returns every catalog identifier in evaluation order.
func PatternIDs() []model.PatternID {
	ids := make([]model.PatternID, len(catalog))
	for i, rule := range catalog {
		ids[i] = rule.ID
	}
	return ids
}

// IsKnownPattern reports whether id is a catalog identifier or PatternUnknown.
func IsKnownPattern(id model.PatternID) bool {
	if id == model.PatternUnknown {
		return true
	}
	for _, rule := range catalog {
		if rule.ID == id {
			return true
		}
	}
	return false
}

func buildSum(m Match) expression {
	terms := variadic(m.After)
	return expression{
		plain:       strings.Join(terms, " + "),
		typeset:     strings.Join(terms, " + "),
		explanation: []string{`"sum of" → addition (+)`},
	}
}

func buildDifference(m Match) expression {
	ops := operands(m.After)
	expr := expression{
		plain:       ops[0] + " - " + ops[1],
		typeset:     ops[0] + " - " + ops[1],
		explanation: []string{`"difference" → subtraction (-)`},
	}
	if strings.Contains(m.Phrase, "how many less") {
		expr.traps = append(expr.traps,
			`"how many less" often reverses the order: "A is how many less than B" means B - A.`)
	}
	return expr
}

func buildProduct(m Match) expression {
	factors := variadic(m.After)
	return expression{
		plain:       strings.Join(factors, " * "),
		typeset:     strings.Join(factors, ` \cdot `),
		explanation: []string{`"product of" → multiplication (* or ·)`},
	}
}

func buildQuotient(m Match) expression {
	ops := operands(m.After)
	expr := expression{
		plain:       ops[0] + " / " + ops[1],
		typeset:     `\frac{` + ops[0] + "}{" + ops[1] + "}",
		explanation: []string{`"quotient of" → division (/)`},
	}
	if perWord.MatchString(m.Phrase) {
		expr.traps = append(expr.traps,
			`"per" usually indicates division: "miles per hour" → miles/hour.`)
	}
	return expr
}

func buildMoreThan(m Match) expression {
	left := side(m.Before, PlaceholderFirst)
	right := side(m.After, PlaceholderSecond)
	return expression{
		plain:   right + " + " + left,
		typeset: right + " + " + left,
		explanation: []string{fmt.Sprintf(
			`"more than" → addition, but the order is reversed: "%s more than %s" means %s + %s.`,
			left, right, right, left)},
		traps: []string{`"More than" reverses the order: "5 more than x" is x + 5, not 5 + x.`},
	}
}

func buildLessThan(m Match) expression {
	left := side(m.Before, PlaceholderFirst)
	right := side(m.After, PlaceholderSecond)
	return expression{
		plain:   right + " - " + left,
		typeset: right + " - " + left,
		explanation: []string{fmt.Sprintf(
			`"less than" → subtraction, but the order is reversed: "%s less than %s" means %s - %s.`,
			left, right, right, left)},
		traps: []string{`"Less than" reverses the order: "5 less than x" is x - 5, not 5 - x. This is a very common trap.`},
	}
}

func buildAtLeast(m Match) expression {
	left := side(m.Before, PlaceholderFirst)
	right := side(m.After, PlaceholderSecond)
	return expression{
		plain:       left + " >= " + right,
		typeset:     left + ` \geq ` + right,
		explanation: []string{`"at least" → greater than or equal to (≥).`},
	}
}

func buildAtMost(m Match) expression {
	left := side(m.Before, PlaceholderFirst)
	right := side(m.After, PlaceholderSecond)
	return expression{
		plain:       left + " <= " + right,
		typeset:     left + ` \leq ` + right,
		explanation: []string{`"at most" → less than or equal to (≤).`},
	}
}

// scaled builds "factor * operand" from the phrase with its trigger removed.
func scaled(factor, explanation string) builder {
	return func(m Match) expression {
		operand := unary(m.Stripped)
		return expression{
			plain:       factor + " * " + operand,
			typeset:     factor + ` \cdot ` + operand,
			explanation: []string{explanation},
		}
	}
}

func buildTimes(m Match) expression {
	factor := "n"
	if len(m.Groups) > 1 {
		factor = m.Groups[1]
	}
	// Only the first "N times" is removed.
	operand := unary(m.Remainder)
	return expression{
		plain:       factor + " * " + operand,
		typeset:     factor + ` \cdot ` + operand,
		explanation: []string{fmt.Sprintf(`"%s times" → multiply by %s.`, factor, factor)},
	}
}

// power builds "operand^exponent" from the phrase with its trigger removed.
func power(exponent, explanation string) builder {
	return func(m Match) expression {
		operand := unary(m.Stripped)
		return expression{
			plain:       operand + "^" + exponent,
			typeset:     operand + "^{" + exponent + "}",
			explanation: []string{explanation},
		}
	}
}

func buildSqrt(m Match) expression {
	operand := unary(m.Stripped)
	return expression{
		plain:       "sqrt(" + operand + ")",
		typeset:     `\sqrt{` + operand + "}",
		explanation: []string{`"square root of" → √.`},
	}
}

func buildPercentOf(m Match) expression {
	pct := DefaultPercent
	if groups := percentValue.FindStringSubmatch(m.Phrase); groups != nil {
		pct = groups[1]
	}
	operand := unary(m.After)
	return expression{
		plain:       "(" + pct + "/100) * " + operand,
		typeset:     `\frac{` + pct + `}{100} \cdot ` + operand,
		explanation: []string{fmt.Sprintf(`"%s%% of" → multiply by %s/100.`, pct, pct)},
		traps:       []string{`Remember: "percent of" means multiplication, not division.`},
	}
}

func buildRatio(m Match) expression {
	ops := operands(m.After)
	return expression{
		plain:       ops[0] + " : " + ops[1],
		typeset:     ops[0] + " : " + ops[1],
		explanation: []string{`"ratio of A to B" → A:B.`},
	}
}

func buildAreaCircle(m Match) expression {
	r := "r"
	if groups := radiusName.FindStringSubmatch(m.Phrase); groups != nil {
		r = groups[1]
	}
	return expression{
		plain:       "pi * " + r + "^2",
		typeset:     `\pi ` + r + "^{2}",
		explanation: []string{`"area of a circle" → π * radius².`},
	}
}

func buildPerimeterRect(_ Match) expression {
	return expression{
		plain:       "2 * (length + width)",
		typeset:     `2 (\text{length} + \text{width})`,
		explanation: []string{`"perimeter of a rectangle" → 2*(length+width).`},
	}
}

func buildFunction(_ Match) expression {
	return expression{
		plain:       "f(x)",
		typeset:     "f(x)",
		explanation: []string{`"f of x" → function notation f(x).`},
	}
}

func buildDerivative(m Match) expression {
	operand := unary(m.Stripped)
	return expression{
		plain:       "d/d" + operand,
		typeset:     `\frac{d}{d` + operand + "}",
		explanation: []string{`"derivative of" → d/dx operator.`},
	}
}
