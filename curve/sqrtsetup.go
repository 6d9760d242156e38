package curve

import (
	"math/big"

	"github.com/cronokirby/weierstrass/numeric"
)

// SqrtSetup factors p-1 = Q * 2^S and finds a quadratic non-residue mod
// p, once per curve, using math/big regardless of which numeric backend
// the caller will use for actual field arithmetic. This is sound because
// p is public, fixed, compile-time data: factoring it carries no
// secret-dependent branching a constant-time backend would need to
// avoid, so there is nothing lost by doing the one-time setup work in
// plain math/big and handing the three resulting constants to the
// chosen backend via Factory.FromHex.
func SqrtSetup[T numeric.Elem[T]](f numeric.Factory[T], d Descriptor) (numeric.SqrtParams[T], error) {
	var zero numeric.SqrtParams[T]

	p, ok := new(big.Int).SetString(d.P, 16)
	if !ok {
		return zero, fmtErr(d, "p")
	}

	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	q := new(big.Int).Set(pMinus1)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	nonResidue := big.NewInt(2)
	for {
		if big.Jacobi(nonResidue, p) == -1 {
			break
		}
		nonResidue.Add(nonResidue, big.NewInt(1))
	}

	qPlus1Over2 := new(big.Int).Add(q, big.NewInt(1))
	qPlus1Over2.Rsh(qPlus1Over2, 1)

	qT, err := f.FromHex(q.Text(16))
	if err != nil {
		return zero, err
	}
	nrT, err := f.FromHex(nonResidue.Text(16))
	if err != nil {
		return zero, err
	}
	halfT, err := f.FromHex(qPlus1Over2.Text(16))
	if err != nil {
		return zero, err
	}

	return numeric.SqrtParams[T]{
		Q:           qT,
		S:           s,
		NonResidue:  nrT,
		QPlus1Over2: halfT,
	}, nil
}

func fmtErr(d Descriptor, field string) error {
	return &malformedField{curve: d.ID, field: field}
}

type malformedField struct {
	curve, field string
}

func (e *malformedField) Error() string {
	return "curve " + e.curve + ": malformed " + e.field + " field"
}
