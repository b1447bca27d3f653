// perf/regression.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import "github.com/RISCfuture/SF50-TOLD-sub003/log"

// RegressionModel evaluates polynomial fits of the charts instead of
// interpolating them. Fits smooth out chart digitization noise but are
// inexact, so every value carries an uncertainty band: the largest
// residual observed between the fit and the chart it was fitted to.
// The chart axes still bound the envelope; the polynomials are never
// evaluated outside them.
type RegressionModel struct {
	modelCore
}

func NewRegressionModel(tables *TableSet, settings Settings, lg *log.Logger) *RegressionModel {
	return &RegressionModel{modelCore{tables: tables, settings: settings, lg: lg}}
}

func (m *RegressionModel) Compute(metric Metric, cond Conditions, cfg Configuration, rwy AdjustedRunway) Outcome {
	return m.compute(m.base, metric, cond, cfg, rwy)
}

// base delegates the envelope check to the chart's own Lookup (an
// offscale or invalid chart outcome stands), then substitutes the
// polynomial's value for the interpolated one.
func (m *RegressionModel) base(metric Metric, cfg Configuration, pressureAlt, temperature float64) Outcome {
	key := baseTableKey(metric, cfg.Flaps)
	tab := m.tables.Table(key)
	reg, ok := regressions[key]
	if tab == nil || !ok {
		return Invalid
	}

	var chart Outcome
	if metric == Vref {
		chart = tab.Lookup(cfg.Weight)
	} else {
		chart = tab.Lookup(cfg.Weight, pressureAlt, temperature)
	}
	if !chart.IsValue() {
		return chart
	}

	return ValueWithin(reg.eval(cfg.Weight, pressureAlt, temperature), reg.maxErr)
}

// polyTerm is one monomial of a fitted polynomial: coefficient c times
// W^pw * A^pa * T^pt, where W is weight in thousands of pounds, A is
// pressure altitude in thousands of feet, and T is temperature in tens
// of degrees Celsius.
type polyTerm struct {
	pw, pa, pt int
	c          float64
}

type regression struct {
	rmse, maxErr float64
	terms        []polyTerm
}

func (r regression) eval(weight, pressureAlt, temperature float64) float64 {
	W := weight / 1000
	A := pressureAlt / 1000
	T := temperature / 10

	v := 0.0
	for _, t := range r.terms {
		v += t.c * intPow(W, t.pw) * intPow(A, t.pa) * intPow(T, t.pt)
	}
	return v
}

func intPow(x float64, e int) float64 {
	v := 1.0
	for i := 0; i < e; i++ {
		v *= x
	}
	return v
}

// Coefficients are generated offline by refitting the embedded dataset;
// rmse and maxErr are the fit residuals against that dataset.
var regressions = map[string]regression{
	"takeoff/ground run": {
		rmse: 1.1448, maxErr: 5.0103,
		terms: []polyTerm{
		{0, 0, 0, 3.4882454301e+01},
		{0, 0, 1, 5.9189916650e+01},
		{0, 0, 2, -1.0102553129e+01},
		{0, 0, 3, 2.9843893480e-03},
		{0, 1, 0, 1.1179976621e+01},
		{0, 1, 1, -5.5024111999e+00},
		{0, 1, 2, 3.0930735931e-01},
		{0, 2, 0, 3.2431110503e-03},
		{0, 2, 1, 9.4350094356e-04},
		{0, 3, 0, -1.1533605274e-04},
		{1, 0, 0, -3.2884844659e+01},
		{1, 0, 1, -2.2219913420e+01},
		{1, 0, 2, 3.1454545455e+00},
		{1, 1, 0, -5.9992632370e+00},
		{1, 1, 1, 1.6777489177e+00},
		{1, 2, 0, -3.4965034893e-04},
		{2, 0, 0, 5.7063311753e+01},
		{2, 0, 1, 4.5411255412e+00},
		{2, 1, 0, 3.2931818182e+00},
		{3, 0, 0, 2.4242423831e-01},
		},
	},
	"takeoff/total distance": {
		rmse: 2.2670, maxErr: 11.2339,
		terms: []polyTerm{
		{0, 0, 0, -6.2270690466e+01},
		{0, 0, 1, 1.1186844573e+02},
		{0, 0, 2, -1.8073842729e+01},
		{0, 0, 3, 7.2256657484e-02},
		{0, 1, 0, 3.1450765690e+01},
		{0, 1, 1, -1.1758483392e+01},
		{0, 1, 2, 6.2238906926e-01},
		{0, 2, 0, -1.0978942932e+00},
		{0, 2, 1, 5.0876207126e-02},
		{0, 3, 0, 1.2747669032e-04},
		{1, 0, 0, 1.3478360722e+01},
		{1, 0, 1, -4.1273917749e+01},
		{1, 0, 2, 5.3830086580e+00},
		{1, 1, 0, -1.4899793122e+01},
		{1, 1, 1, 3.4519696970e+00},
		{1, 2, 0, 3.7485431235e-01},
		{2, 0, 0, 7.4737824770e+01},
		{2, 0, 1, 7.9816017316e+00},
		{2, 1, 0, 6.1761363635e+00},
		{3, 0, 0, 1.0151515091e+00},
		},
	},
	"takeoff climb/gradient": {
		rmse: 0.2931, maxErr: 0.5392,
		terms: []polyTerm{
		{0, 0, 0, 3.8050965031e+03},
		{0, 0, 1, -5.1048163517e+01},
		{0, 0, 2, 5.5858913855e-03},
		{0, 0, 3, -5.7392102846e-04},
		{0, 1, 0, -2.1594788268e+01},
		{0, 1, 1, -2.6077824953e-01},
		{0, 1, 2, 2.7056277035e-05},
		{0, 2, 0, 1.1696636901e-03},
		{0, 2, 1, 6.9375068856e-06},
		{0, 3, 0, 3.1565656529e-04},
		{1, 0, 0, -5.5078009936e+02},
		{1, 0, 1, -9.2402597366e-01},
		{1, 0, 2, -6.4935065011e-04},
		{1, 1, 0, -1.3314185738e-02},
		{1, 1, 1, 2.0346320343e-03},
		{1, 2, 0, -1.2237762266e-03},
		{2, 0, 0, 4.2694810823e-01},
		{2, 0, 1, 1.0822510788e-02},
		{2, 1, 0, 2.2727272681e-03},
		{3, 0, 0, -3.0303033868e-02},
		},
	},
	"takeoff climb/rate": {
		rmse: 0.2774, maxErr: 0.5463,
		terms: []polyTerm{
		{0, 0, 0, 6.4123882935e+03},
		{0, 0, 1, -8.6036456946e+01},
		{0, 0, 2, -3.8108766226e-02},
		{0, 0, 3, 6.3131313133e-04},
		{0, 1, 0, 5.7054949286e+01},
		{0, 1, 1, -1.6954714036e+00},
		{0, 1, 2, 4.7348484847e-04},
		{0, 2, 0, -5.4155688058e-01},
		{0, 2, 1, -6.9617882119e-03},
		{0, 3, 0, 4.4313325504e-04},
		{1, 0, 0, -9.2515023488e+02},
		{1, 0, 1, -1.5685064934e+00},
		{1, 0, 2, 6.6017316003e-03},
		{1, 1, 0, -1.3529170413e+01},
		{1, 1, 1, -1.5562770563e-02},
		{1, 2, 0, 1.1946386894e-03},
		{2, 0, 0, -1.5503252555e-01},
		{2, 0, 1, 1.6233766229e-02},
		{2, 1, 0, 3.4090909072e-03},
		{3, 0, 0, 1.5151518835e-02},
		},
	},
	"landing/100/ground run": {
		rmse: 0.2780, maxErr: 0.6312,
		terms: []polyTerm{
		{0, 0, 0, -7.5428721406e+00},
		{0, 0, 1, -2.8620452969e+00},
		{0, 0, 2, 2.7592893256e-02},
		{0, 0, 3, 7.3653198647e-03},
		{0, 1, 0, -3.0514535952e+00},
		{0, 1, 1, -1.1031019397e+00},
		{0, 1, 2, -1.5016233767e-03},
		{0, 2, 0, -1.1342130082e-02},
		{0, 2, 1, -5.0782550788e-04},
		{0, 3, 0, -2.8328153334e-04},
		{1, 0, 0, 6.6143686319e+01},
		{1, 0, 1, 5.1124025990e+00},
		{1, 0, 2, -1.3961038967e-02},
		{1, 1, 0, 4.4355772015e+00},
		{1, 1, 1, 5.8041558441e-01},
		{1, 2, 0, 3.5353535337e-03},
		{2, 0, 0, 3.6111471966e+01},
		{2, 0, 1, 1.0675324674e+00},
		{2, 1, 0, 8.1969696961e-01},
		{3, 0, 0, -9.8989899647e-01},
		},
	},
	"landing/100/total distance": {
		rmse: 0.2813, maxErr: 0.5501,
		terms: []polyTerm{
		{0, 0, 0, 9.1669589957e+02},
		{0, 0, 1, -1.0937832329e+00},
		{0, 0, 2, 2.0765692568e-02},
		{0, 0, 3, -6.3131313073e-04},
		{0, 1, 0, 1.3710449688e+01},
		{0, 1, 1, -1.1571383200e+00},
		{0, 1, 2, 2.3133116885e-03},
		{0, 2, 0, 2.9716117227e-02},
		{0, 2, 1, -7.9087579091e-04},
		{0, 3, 0, -6.7987567995e-04},
		{1, 0, 0, 8.6136848273e+01},
		{1, 0, 1, 4.4578571438e+00},
		{1, 0, 2, -4.8701298573e-03},
		{1, 1, 0, 4.5886541242e+00},
		{1, 1, 1, 5.8768831169e-01},
		{1, 2, 0, -3.9238539257e-03},
		{2, 0, 0, 3.2431818371e+01},
		{2, 0, 1, 1.1272727272e+00},
		{2, 1, 0, 8.1060606055e-01},
		{3, 0, 0, -7.6767677962e-01},
		},
	},
	"landing/50/ground run": {
		rmse: 0.2877, maxErr: 0.6179,
		terms: []polyTerm{
		{0, 0, 0, -3.4550718731e+01},
		{0, 0, 1, -2.4070443206e+00},
		{0, 0, 2, 2.3507395341e-02},
		{0, 0, 3, 4.2087542001e-04},
		{0, 1, 0, -2.7752860563e+00},
		{0, 1, 1, -1.3337752664e+00},
		{0, 1, 2, 4.4642857161e-04},
		{0, 2, 0, 2.2409534895e-02},
		{0, 2, 1, -2.5807525806e-03},
		{0, 3, 0, -3.7231287213e-04},
		{1, 0, 0, 9.1240547942e+01},
		{1, 0, 1, 5.6799999998e+00},
		{1, 0, 2, -5.1948051860e-03},
		{1, 1, 0, 4.8727272727e+00},
		{1, 1, 1, 6.9381818182e-01},
		{1, 2, 0, -3.0303030282e-03},
		{2, 0, 0, 4.0415584492e+01},
		{2, 0, 1, 1.2883116883e+00},
		{2, 1, 0, 1.0060606061e+00},
		{3, 0, 0, -1.0505050553e+00},
		},
	},
	"landing/50/total distance": {
		rmse: 0.2693, maxErr: 0.5995,
		terms: []polyTerm{
		{0, 0, 0, 9.6632335078e+02},
		{0, 0, 1, -1.3392584500e+00},
		{0, 0, 2, 1.4245129774e-02},
		{0, 0, 3, 1.3257575759e-02},
		{0, 1, 0, 1.5441719160e+01},
		{0, 1, 1, -1.3508430320e+00},
		{0, 1, 2, 2.8409090915e-04},
		{0, 2, 0, -8.3132145688e-03},
		{0, 2, 1, -1.0239760239e-03},
		{0, 3, 0, 2.8328153313e-04},
		{1, 0, 0, 1.2555031288e+02},
		{1, 0, 1, 5.3027922079e+00},
		{1, 0, 2, -2.0454545438e-02},
		{1, 1, 0, 5.2606254857e+00},
		{1, 1, 1, 6.9345454545e-01},
		{1, 2, 0, 1.4374514389e-03},
		{2, 0, 0, 3.3795454679e+01},
		{2, 0, 1, 1.3272727273e+00},
		{2, 1, 0, 9.6515151514e-01},
		{3, 0, 0, -6.2626263472e-01},
		},
	},
	"landing/50 ice/ground run": {
		rmse: 0.2641, maxErr: 0.6000,
		terms: []polyTerm{
		{0, 0, 0, -1.3426498904e+02},
		{0, 0, 1, -1.7509761072e+00},
		{0, 0, 2, 2.2556818185e-01},
		{0, 0, 3, 1.8939393940e-02},
		{0, 1, 0, -7.6430347706e+00},
		{0, 1, 1, -1.4727255245e+00},
		{0, 1, 2, -1.7045454548e-03},
		{0, 2, 0, 2.0767773877e-02},
		{0, 2, 1, -9.6153846154e-04},
		{0, 3, 0, -1.4690170938e-03},
		{1, 0, 0, 1.6379839615e+02},
		{1, 0, 1, 6.1590909091e+00},
		{1, 0, 2, -5.0000000006e-02},
		{1, 1, 0, 7.3608006993e+00},
		{1, 1, 1, 7.8345454545e-01},
		{1, 2, 0, 5.2447552688e-04},
		{2, 0, 0, 3.4543182064e+01},
		{2, 0, 1, 1.5181818182e+00},
		{2, 1, 0, 9.8863636364e-01},
		{3, 0, 0, -3.9393940954e-01},
		},
	},
	"landing/50 ice/total distance": {
		rmse: 0.2772, maxErr: 0.5963,
		terms: []polyTerm{
		{0, 0, 0, 1.0731849037e+03},
		{0, 0, 1, -4.4417744752e+00},
		{0, 0, 2, -2.0056818188e-01},
		{0, 0, 3, -1.1363636365e-02},
		{0, 1, 0, 1.4100246702e+01},
		{0, 1, 1, -1.5008245921e+00},
		{0, 1, 2, -2.8409090909e-03},
		{0, 2, 0, -2.3732517495e-02},
		{0, 2, 1, -1.0198135198e-03},
		{0, 3, 0, 2.4281274281e-04},
		{1, 0, 0, 1.4827993599e+02},
		{1, 0, 1, 7.1809090908e+00},
		{1, 0, 2, 4.0909090920e-02},
		{1, 1, 0, 7.2354720265e+00},
		{1, 1, 1, 7.8818181818e-01},
		{1, 2, 0, 4.0209790234e-03},
		{2, 0, 0, 3.7452272711e+01},
		{2, 0, 1, 1.4272727273e+00},
		{2, 1, 0, 9.9772727286e-01},
		{3, 0, 0, -5.7575757474e-01},
		},
	},
	"go-around/100/gradient": {
		rmse: 0.2840, maxErr: 0.5397,
		terms: []polyTerm{
		{0, 0, 0, 2.5489186391e+03},
		{0, 0, 1, -4.6007990162e+01},
		{0, 0, 2, 4.0764790742e-02},
		{0, 0, 3, -6.7340067330e-03},
		{0, 1, 0, -1.8632602585e+01},
		{0, 1, 1, -2.3379620380e-01},
		{0, 1, 2, 1.9480519482e-03},
		{0, 2, 0, -9.4766344600e-03},
		{0, 2, 1, 2.1978021977e-03},
		{0, 3, 0, 4.2087542059e-04},
		{1, 0, 0, -3.2000000126e+02},
		{1, 0, 1, 1.4243045008e-09},
		{2, 0, 0, 2.4138467861e-07},
		{3, 0, 0, -1.5265130629e-08},
		},
	},
	"go-around/50/gradient": {
		rmse: 0.2840, maxErr: 0.5397,
		terms: []polyTerm{
		{0, 0, 0, 2.6889186391e+03},
		{0, 0, 1, -4.6007990161e+01},
		{0, 0, 2, 4.0764790729e-02},
		{0, 0, 3, -6.7340067330e-03},
		{0, 1, 0, -1.8632602585e+01},
		{0, 1, 1, -2.3379620380e-01},
		{0, 1, 2, 1.9480519482e-03},
		{0, 2, 0, -9.4766344599e-03},
		{0, 2, 1, 2.1978021977e-03},
		{0, 3, 0, 4.2087542059e-04},
		{1, 0, 0, -3.2000000126e+02},
		{1, 0, 1, 1.3404865322e-09},
		{2, 0, 0, 2.4136762263e-07},
		{3, 0, 0, -1.5265130629e-08},
		},
	},
	"go-around/50 ice/gradient": {
		rmse: 0.2779, maxErr: 0.5493,
		terms: []polyTerm{
		{0, 0, 0, 2.4190548954e+03},
		{0, 0, 1, -4.5983449884e+01},
		{0, 0, 2, -1.3636363638e-01},
		{0, 0, 3, -6.0606060607e-02},
		{0, 1, 0, -1.8775450661e+01},
		{0, 1, 1, -2.1729603730e-01},
		{0, 1, 2, 9.0909090910e-03},
		{0, 2, 0, 2.3863636374e-02},
		{0, 2, 1, 3.7296037296e-03},
		{0, 3, 0, -1.6996891999e-03},
		{1, 0, 0, -3.2000000017e+02},
		{2, 0, 0, 3.3242915922e-08},
		{3, 0, 0, -2.1059303811e-09},
		},
	},

// vref fits (degree 2 in W=weight/1000)
	"vref/up": {rmse: 0.1512, maxErr: 0.2571, terms: []polyTerm{
		{0, 0, 0, 3.9800000000e+01},
		{1, 0, 0, 1.3314285714e+01},
		{2, 0, 0, -5.7142857143e-01},
	}},
	"vref/up ice": {rmse: 0.1512, maxErr: 0.2571, terms: []polyTerm{
		{0, 0, 0, 5.2800000000e+01},
		{1, 0, 0, 1.3314285714e+01},
		{2, 0, 0, -5.7142857143e-01},
	}},
	"vref/50": {rmse: 0.1512, maxErr: 0.2571, terms: []polyTerm{
		{0, 0, 0, 3.2800000000e+01},
		{1, 0, 0, 1.3314285714e+01},
		{2, 0, 0, -5.7142857143e-01},
	}},
	"vref/50 ice": {rmse: 0.1512, maxErr: 0.2571, terms: []polyTerm{
		{0, 0, 0, 4.5800000000e+01},
		{1, 0, 0, 1.3314285714e+01},
		{2, 0, 0, -5.7142857143e-01},
	}},
	"vref/100": {rmse: 0.1512, maxErr: 0.2571, terms: []polyTerm{
		{0, 0, 0, 2.5800000000e+01},
		{1, 0, 0, 1.3314285714e+01},
		{2, 0, 0, -5.7142857143e-01},
	}},
}
