// Package rational implements the exact fraction arithmetic the time model
// runs on. Values stay reduced and their denominators are capped so chains
// of conversions can't accumulate unbounded precision.
package rational

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ruiseixasm/jsonmidikit/constants"
)

// Rational is an exact numerator/denominator pair. The zero value is 0/1.
// The denominator is always positive and at most constants.DenominatorLimit.
type Rational struct {
	num int64
	den int64
}

var Zero = Rational{0, 1}
var One = Rational{1, 1}

func New(num, den int64) Rational {
	if den == 0 {
		// mirrors the division rule: an impossible denominator keeps
		// the value inert instead of aborting a composition chain
		return Rational{num, 1}
	}
	return normalize(num, den)
}

func FromInt(n int64) Rational {
	return Rational{n, 1}
}

// FromFloat converts through the exact binary expansion of f and then
// limits the denominator, so 0.9 becomes 9/10 rather than a 2^52 monster.
func FromFloat(f float64) Rational {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero
	}
	mant, exp := math.Frexp(f)
	num := int64(mant * (1 << 53))
	exp -= 53
	if exp > 0 {
		if exp > 9 {
			// out of any musical range
			return Zero
		}
		return normalize(num<<uint(exp), 1)
	}
	if exp < -62 {
		return Zero
	}
	return normalize(num, 1<<uint(-exp))
}

// Parse accepts "3/4", "1.5" and "3".
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("empty rational")
	}
	if num, den, found := strings.Cut(s, "/"); found {
		n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
		if err != nil {
			return Zero, fmt.Errorf("bad numerator %q", num)
		}
		d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
		if err != nil || d == 0 {
			return Zero, fmt.Errorf("bad denominator %q", den)
		}
		return New(n, d), nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Zero, fmt.Errorf("unparsable rational %q", s)
	}
	return FromFloat(f), nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func normalize(num, den int64) Rational {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Rational{0, 1}
	}
	g := gcd(abs(num), den)
	num, den = num/g, den/g
	if den > constants.DenominatorLimit {
		return limitDenominator(num, den, constants.DenominatorLimit)
	}
	return Rational{num, den}
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// limitDenominator finds the closest fraction with a denominator at most
// max, walking the continued-fraction convergents (the algorithm of
// Python's Fraction.limit_denominator).
func limitDenominator(num, den, max int64) Rational {
	neg := num < 0
	n, d := abs(num), den

	var p0, q0, p1, q1 int64 = 0, 1, 1, 0
	nn, dd := n, d
	for {
		a := nn / dd
		q2 := q0 + a*q1
		if q2 > max {
			break
		}
		p0, q0, p1, q1 = p1, q1, p0+a*p1, q2
		nn, dd = dd, nn-a*dd
	}
	k := (max - q0) / q1

	// closer of the two bounding convergents; float distance is plenty to
	// separate candidates at least 1/(q1*(q0+k*q1)) apart
	b1n, b1d := p0+k*p1, q0+k*q1
	b2n, b2d := p1, q1
	x := float64(n) / float64(d)
	d1 := math.Abs(float64(b1n)/float64(b1d) - x)
	d2 := math.Abs(float64(b2n)/float64(b2d) - x)
	rn, rd := b1n, b1d
	if d2 <= d1 {
		rn, rd = b2n, b2d
	}
	if neg {
		rn = -rn
	}
	g := gcd(abs(rn), rd)
	if g == 0 {
		return Rational{0, 1}
	}
	return Rational{rn / g, rd / g}
}

func (r Rational) Num() int64 { return r.orOne().num }
func (r Rational) Den() int64 { return r.orOne().den }

// orOne repairs the uninitialized zero value (0/0) into 0/1.
func (r Rational) orOne() Rational {
	if r.den == 0 {
		return Rational{r.num, 1}
	}
	return r
}

func (r Rational) Add(o Rational) Rational {
	r, o = r.orOne(), o.orOne()
	return normalize(r.num*o.den+o.num*r.den, r.den*o.den)
}

func (r Rational) Sub(o Rational) Rational {
	r, o = r.orOne(), o.orOne()
	return normalize(r.num*o.den-o.num*r.den, r.den*o.den)
}

func (r Rational) Mul(o Rational) Rational {
	r, o = r.orOne(), o.orOne()
	return normalize(r.num*o.num, r.den*o.den)
}

// Div returns r unchanged when o is zero. Values travel through long
// algebraic chains and a failed step must not abort the whole composition.
func (r Rational) Div(o Rational) Rational {
	r, o = r.orOne(), o.orOne()
	if o.num == 0 {
		return r
	}
	return normalize(r.num*o.den, r.den*o.num)
}

func (r Rational) Neg() Rational {
	r = r.orOne()
	return Rational{-r.num, r.den}
}

func (r Rational) IsZero() bool { return r.orOne().num == 0 }

func (r Rational) Sign() int {
	switch n := r.orOne().num; {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func (r Rational) Cmp(o Rational) int {
	return r.Sub(o).Sign()
}

func (r Rational) Less(o Rational) bool  { return r.Cmp(o) < 0 }
func (r Rational) Equal(o Rational) bool { return r.Cmp(o) == 0 }

func (r Rational) Float() float64 {
	r = r.orOne()
	return float64(r.num) / float64(r.den)
}

// Int floors toward negative infinity. Musical indices (measure numbers,
// beat digits) need -1/2 to land in measure -1, not measure 0.
func (r Rational) Int() int64 {
	r = r.orOne()
	q := r.num / r.den
	if r.num%r.den != 0 && r.num < 0 {
		q--
	}
	return q
}

// Ceil rounds toward positive infinity.
func (r Rational) Ceil() int64 {
	r = r.orOne()
	q := r.num / r.den
	if r.num%r.den != 0 && r.num > 0 {
		q++
	}
	return q
}

// Mod returns r - floor(r/cycle)*cycle. A zero cycle keeps r unchanged,
// same as Div.
func (r Rational) Mod(cycle Rational) Rational {
	if cycle.orOne().num == 0 {
		return r.orOne()
	}
	turns := r.Div(cycle).Int()
	return r.Sub(cycle.Mul(FromInt(turns)))
}

func (r Rational) String() string {
	r = r.orOne()
	if r.den == 1 {
		return strconv.FormatInt(r.num, 10)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

func (r Rational) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts both "3/4" strings and plain JSON numbers.
func (r *Rational) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := Parse(s)
		if err != nil {
			return err
		}
		*r = v
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("rational must be a number or a \"n/d\" string")
	}
	*r = FromFloat(f)
	return nil
}
