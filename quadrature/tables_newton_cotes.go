package quadrature

// nccTable holds closed Newton-Cotes rules on [-1,1].
var nccTable = map[int]tabulated{
	1: {
		x: []float64{
			0.0,
		},
		w: []float64{
			2.0,
		},
	},
	2: {
		x: []float64{
			-1.0, 1.0,
		},
		w: []float64{
			1.0, 1.0,
		},
	},
	3: {
		x: []float64{
			-1.0, 0.0,
			1.0,
		},
		w: []float64{
			0.3333333333333333333333, 1.333333333333333333333,
			0.3333333333333333333333,
		},
	},
	4: {
		x: []float64{
			-1.0, -0.3333333333333333333333,
			0.3333333333333333333333, 1.0,
		},
		w: []float64{
			0.25, 0.75,
			0.75, 0.25,
		},
	},
	5: {
		x: []float64{
			-1.0, -0.5,
			0.0, 0.5,
			1.0,
		},
		w: []float64{
			0.1555555555555555555556, 0.7111111111111111111111,
			0.2666666666666666666667, 0.7111111111111111111111,
			0.1555555555555555555556,
		},
	},
	6: {
		x: []float64{
			-1.0, -0.6,
			-0.2, 0.2,
			0.6, 1.0,
		},
		w: []float64{
			0.1319444444444444444444, 0.5208333333333333333333,
			0.3472222222222222222222, 0.3472222222222222222222,
			0.5208333333333333333333, 0.1319444444444444444444,
		},
	},
	7: {
		x: []float64{
			-1.0, -0.6666666666666666666667,
			-0.3333333333333333333333, 0.0,
			0.3333333333333333333333, 0.6666666666666666666667,
			1.0,
		},
		w: []float64{
			0.09761904761904761904762, 0.5142857142857142857143,
			0.06428571428571428571429, 0.6476190476190476190476,
			0.06428571428571428571429, 0.5142857142857142857143,
			0.09761904761904761904762,
		},
	},
	8: {
		x: []float64{
			-1.0, -0.7142857142857142857143,
			-0.4285714285714285714286, -0.1428571428571428571429,
			0.1428571428571428571429, 0.4285714285714285714286,
			0.7142857142857142857143, 1.0,
		},
		w: []float64{
			0.08692129629629629629630, 0.4140046296296296296296,
			0.153125, 0.3459490740740740740741,
			0.3459490740740740740741, 0.153125,
			0.4140046296296296296296, 0.08692129629629629629630,
		},
	},
	9: {
		x: []float64{
			-1.0, -0.75,
			-0.5, -0.25,
			0.0, 0.25,
			0.5, 0.75,
			1.0,
		},
		w: []float64{
			0.06977072310405643738977, 0.4153791887125220458554,
			-0.06546737213403880070547, 0.7404585537918871252205,
			-0.3202821869488536155203, 0.7404585537918871252205,
			-0.06546737213403880070547, 0.4153791887125220458554,
			0.06977072310405643738977,
		},
	},
	10: {
		x: []float64{
			-1.0, -0.7777777777777777777778,
			-0.5555555555555555555556, -0.3333333333333333333333,
			-0.1111111111111111111111, 0.1111111111111111111111,
			0.3333333333333333333333, 0.5555555555555555555556,
			0.7777777777777777777778, 1.0,
		},
		w: []float64{
			0.06377232142857142857143, 0.3513616071428571428571,
			0.02410714285714285714286, 0.4317857142857142857143,
			0.1289732142857142857143, 0.1289732142857142857143,
			0.4317857142857142857143, 0.02410714285714285714286,
			0.3513616071428571428571, 0.06377232142857142857143,
		},
	},
	11: {
		x: []float64{
			-1.0, -0.8,
			-0.6, -0.4,
			-0.2, 0.0,
			0.2, 0.4,
			0.6, 0.8,
			1.0,
		},
		w: []float64{
			0.05366829672385227940783, 0.3550718828496606274384,
			-0.1620871412538079204746, 0.9098925765592432259099,
			-0.8703102453102453102453, 1.427529260862594195928,
			-0.8703102453102453102453, 0.9098925765592432259099,
			-0.1620871412538079204746, 0.3550718828496606274384,
			0.05366829672385227940783,
		},
	},
	12: {
		x: []float64{
			-1.0, -0.8181818181818181818182,
			-0.6363636363636363636364, -0.4545454545454545454545,
			-0.2727272727272727272727, -0.09090909090909090909091,
			0.09090909090909090909091, 0.2727272727272727272727,
			0.4545454545454545454545, 0.6363636363636363636364,
			0.8181818181818181818182, 1.0,
		},
		w: []float64{
			0.04986646182392710170488, 0.3097107170414462081129,
			-0.07433846358759553203998, 0.5793165095899470899471,
			-0.2203561783509700176367, 0.3558009534832451499118,
			0.3558009534832451499118, -0.2203561783509700176367,
			0.5793165095899470899471, -0.07433846358759553203998,
			0.3097107170414462081129, 0.04986646182392710170488,
		},
	},
	13: {
		x: []float64{
			-1.0, -0.8333333333333333333333,
			-0.6666666666666666666667, -0.5,
			-0.3333333333333333333333, -0.1666666666666666666667,
			0.0, 0.1666666666666666666667,
			0.3333333333333333333333, 0.5,
			0.6666666666666666666667, 0.8333333333333333333333,
			1.0,
		},
		w: []float64{
			0.04327897499326070754642, 0.3140722135007849293564,
			-0.2406439275010703582132, 1.132997795854938712082,
			-1.633011274439845868417, 2.775519337805052090766,
			-2.784426240426240426240, 2.775519337805052090766,
			-1.633011274439845868417, 1.132997795854938712082,
			-0.2406439275010703582132, 0.3140722135007849293564,
			0.04327897499326070754642,
		},
	},
	14: {
		x: []float64{
			-1.0, -0.8461538461538461538462,
			-0.6923076923076923076923, -0.5384615384615384615385,
			-0.3846153846153846153846, -0.2307692307692307692308,
			-0.07692307692307692307692, 0.07692307692307692307692,
			0.2307692307692307692308, 0.3846153846153846153846,
			0.5384615384615384615385, 0.6923076923076923076923,
			0.8461538461538461538462, 1.0,
		},
		w: []float64{
			0.04066943821024715535298, 0.2797521705315707465178,
			-0.1554237405768283744474, 0.7757923084877656636916,
			-0.7538476326642352601347, 1.027352359112310749216,
			-0.2142949031008306801958, -0.2142949031008306801958,
			1.027352359112310749216, -0.7538476326642352601347,
			0.7757923084877656636916, -0.1554237405768283744474,
			0.2797521705315707465178, 0.04066943821024715535298,
		},
	},
	15: {
		x: []float64{
			-1.0, -0.8571428571428571428571,
			-0.7142857142857142857143, -0.5714285714285714285714,
			-0.4285714285714285714286, -0.2857142857142857142857,
			-0.1428571428571428571429, 0.0,
			0.1428571428571428571429, 0.2857142857142857142857,
			0.4285714285714285714286, 0.5714285714285714285714,
			0.7142857142857142857143, 0.8571428571428571428571,
			1.0,
		},
		w: []float64{
			0.03606894243159675258441, 0.2841755893854659286758,
			-0.3080506941047064503855, 1.399497820880536929920,
			-2.647995211293050799224, 5.048155508871558254274,
			-6.715728979011386418794, 7.807754045679971605898,
			-6.715728979011386418794, 5.048155508871558254274,
			-2.647995211293050799224, 1.399497820880536929920,
			-0.3080506941047064503855, 0.2841755893854659286758,
			0.03606894243159675258441,
		},
	},
	16: {
		x: []float64{
			-1.0, -0.8666666666666666666667,
			-0.7333333333333333333333, -0.6,
			-0.4666666666666666666667, -0.3333333333333333333333,
			-0.2, -0.06666666666666666666667,
			0.06666666666666666666667, 0.2,
			0.3333333333333333333333, 0.4666666666666666666667,
			0.6, 0.7333333333333333333333,
			0.8666666666666666666667, 1.0,
		},
		w: []float64{
			0.03417459954325188700189, 0.2570147573548103682032,
			-0.2254458101190104538319, 1.014085416420447112411,
			-1.512586229688280469530, 2.382720699013598009134,
			-1.936010422992496095175, 0.9860469904676796417868,
			0.9860469904676796417868, -1.936010422992496095175,
			2.382720699013598009134, -1.512586229688280469530,
			1.014085416420447112411, -0.2254458101190104538319,
			0.2570147573548103682032, 0.03417459954325188700189,
		},
	},
	17: {
		x: []float64{
			-1.0, -0.875,
			-0.75, -0.625,
			-0.5, -0.375,
			-0.25, -0.125,
			0.0, 0.125,
			0.25, 0.375,
			0.5, 0.625,
			0.75, 0.875,
			1.0,
		},
		w: []float64{
			0.03079789423329901249464, 0.2612823828802803108575,
			-0.3679528932986760562235, 1.703737977809008690497,
			-3.950148071778393042701, 8.552529993440295338833,
			-13.93461423719788003773, 19.18034221107873284793,
			-20.95195051433333412792, 19.18034221107873284793,
			-13.93461423719788003773, 8.552529993440295338833,
			-3.950148071778393042701, 1.703737977809008690497,
			-0.3679528932986760562235, 0.2612823828802803108575,
			0.03079789423329901249464,
		},
	},
	18: {
		x: []float64{
			-1.0, -0.8823529411764705882353,
			-0.7647058823529411764706, -0.6470588235294117647059,
			-0.5294117647058823529412, -0.4117647058823529411765,
			-0.2941176470588235294118, -0.1764705882352941176471,
			-0.05882352941176470588235, 0.05882352941176470588235,
			0.1764705882352941176471, 0.2941176470588235294118,
			0.4117647058823529411765, 0.5294117647058823529412,
			0.6470588235294117647059, 0.7647058823529411764706,
			0.8823529411764705882353, 1.0,
		},
		w: []float64{
			0.02936442944679007851866, 0.2390723851605166967684,
			-0.2878431923118344364119, 1.289734802610925858740,
			-2.532547749581262726104, 4.702695904581749649908,
			-5.791330845017044368988, 5.347500024845654082592,
			-1.996645759735494835023, -1.996645759735494835023,
			5.347500024845654082592, -5.791330845017044368988,
			4.702695904581749649908, -2.532547749581262726104,
			1.289734802610925858740, -0.2878431923118344364119,
			0.2390723851605166967684, 0.02936442944679007851866,
		},
	},
	19: {
		x: []float64{
			-1.0, -0.8888888888888888888889,
			-0.7777777777777777777778, -0.6666666666666666666667,
			-0.5555555555555555555556, -0.4444444444444444444444,
			-0.3333333333333333333333, -0.2222222222222222222222,
			-0.1111111111111111111111, 0.0,
			0.1111111111111111111111, 0.2222222222222222222222,
			0.3333333333333333333333, 0.4444444444444444444444,
			0.5555555555555555555556, 0.6666666666666666666667,
			0.7777777777777777777778, 0.8888888888888888888889,
			1.0,
		},
		w: []float64{
			0.02679082466482044734398, 0.2431082088837427815124,
			-0.4224762062134649327421, 2.042174237602922761197,
			-5.571479168174972812617, 13.63400445432497621794,
			-26.12228837427499523917, 41.95323753349070844490,
			-55.11536744596860774911, 60.66459187132974016148,
			-55.11536744596860774911, 41.95323753349070844490,
			-26.12228837427499523917, 13.63400445432497621794,
			-5.571479168174972812617, 2.042174237602922761197,
			-0.4224762062134649327421, 0.2431082088837427815124,
			0.02679082466482044734398,
		},
	},
	20: {
		x: []float64{
			-1.0, -0.8947368421052631578947,
			-0.7894736842105263157895, -0.6842105263157894736842,
			-0.5789473684210526315789, -0.4736842105263157894737,
			-0.3684210526315789473684, -0.2631578947368421052632,
			-0.1578947368421052631579, -0.05263157894736842105263,
			0.05263157894736842105263, 0.1578947368421052631579,
			0.2631578947368421052632, 0.3684210526315789473684,
			0.4736842105263157894737, 0.5789473684210526315789,
			0.6842105263157894736842, 0.7894736842105263157895,
			0.8947368421052631578947, 1.0,
		},
		w: []float64{
			0.02567082234556007809964, 0.2244896859525188655617,
			-0.3446789009903089098678, 1.599697436697807427003,
			-3.846673091095297883467, 8.306599334472982411976,
			-13.13943042477111911273, 16.33351360474267829545,
			-13.79264122000119857650, 5.633452752646377404485,
			5.633452752646377404485, -13.79264122000119857650,
			16.33351360474267829545, -13.13943042477111911273,
			8.306599334472982411976, -3.846673091095297883467,
			1.599697436697807427003, -0.3446789009903089098678,
			0.2244896859525188655617, 0.02567082234556007809964,
		},
	},
	21: {
		x: []float64{
			-1.0, -0.9,
			-0.8, -0.7,
			-0.6, -0.5,
			-0.4, -0.3,
			-0.2, -0.1,
			0.0, 0.1,
			0.2, 0.3,
			0.4, 0.5,
			0.6, 0.7,
			0.8, 0.9,
			1.0,
		},
		w: []float64{
			0.02365054649806320638935, 0.2282754352892139499750,
			-0.4729567410228539284621, 2.412373786963751328807,
			-7.542063453430660935476, 20.67359643987960228706,
			-45.41763168795902459593, 83.65611484438710920695,
			-128.1505589803080093031, 165.5945669449457034417,
			-180.0107342704857893158, 165.5945669449457034417,
			-128.1505589803080093031, 83.65611484438710920695,
			-45.41763168795902459593, 20.67359643987960228706,
			-7.542063453430660935476, 2.412373786963751328807,
			-0.4729567410228539284621, 0.2282754352892139499750,
			0.02365054649806320638935,
		},
	},
}

// ncoTable holds open Newton-Cotes rules on [-1,1].
var ncoTable = map[int]tabulated{
	1: {
		x: []float64{
			0.0,
		},
		w: []float64{
			2.0,
		},
	},
	2: {
		x: []float64{
			-0.3333333333333333333333, 0.3333333333333333333333,
		},
		w: []float64{
			1.0, 1.0,
		},
	},
	3: {
		x: []float64{
			-0.5, 0.0,
			0.5,
		},
		w: []float64{
			1.333333333333333333333, -0.6666666666666666666667,
			1.333333333333333333333,
		},
	},
	4: {
		x: []float64{
			-0.6, -0.2,
			0.2, 0.6,
		},
		w: []float64{
			0.9166666666666666666667, 0.08333333333333333333333,
			0.08333333333333333333333, 0.9166666666666666666667,
		},
	},
	5: {
		x: []float64{
			-0.6666666666666666666667, -0.3333333333333333333333,
			0.0, 0.3333333333333333333333,
			0.6666666666666666666667,
		},
		w: []float64{
			1.1, -1.4,
			2.6, -1.4,
			1.1,
		},
	},
	6: {
		x: []float64{
			-0.7142857142857142857143, -0.4285714285714285714286,
			-0.1428571428571428571429, 0.1428571428571428571429,
			0.4285714285714285714286, 0.7142857142857142857143,
		},
		w: []float64{
			0.8486111111111111111111, -0.6291666666666666666667,
			0.7805555555555555555556, 0.7805555555555555555556,
			-0.6291666666666666666667, 0.8486111111111111111111,
		},
	},
	7: {
		x: []float64{
			-0.75, -0.5,
			-0.25, 0.0,
			0.25, 0.5,
			0.75,
		},
		w: []float64{
			0.9735449735449735449735, -2.019047619047619047619,
			4.647619047619047619048, -5.204232804232804232804,
			4.647619047619047619048, -2.019047619047619047619,
			0.9735449735449735449735,
		},
	},
	8: {
		x: []float64{
			-0.7777777777777777777778, -0.5555555555555555555556,
			-0.3333333333333333333333, -0.1111111111111111111111,
			0.1111111111111111111111, 0.3333333333333333333333,
			0.5555555555555555555556, 0.7777777777777777777778,
		},
		w: []float64{
			0.7977678571428571428571, -1.251339285714285714286,
			2.217410714285714285714, -0.7638392857142857142857,
			-0.7638392857142857142857, 2.217410714285714285714,
			-1.251339285714285714286, 0.7977678571428571428571,
		},
	},
	9: {
		x: []float64{
			-0.8, -0.6,
			-0.4, -0.2,
			0.0, 0.2,
			0.4, 0.6,
			0.8,
		},
		w: []float64{
			0.8917548500881834215168, -2.577160493827160493827,
			7.350088183421516754850, -12.14065255731922398589,
			14.95194003527336860670, -12.14065255731922398589,
			7.350088183421516754850, -2.577160493827160493827,
			0.8917548500881834215168,
		},
	},
	10: {
		x: []float64{
			-0.8181818181818181818182, -0.6363636363636363636364,
			-0.4545454545454545454545, -0.2727272727272727272727,
			-0.09090909090909090909091, 0.09090909090909090909091,
			0.2727272727272727272727, 0.4545454545454545454545,
			0.6363636363636363636364, 0.8181818181818181818182,
		},
		w: []float64{
			0.7585088734567901234568, -1.819664627425044091711,
			4.319301146384479717813, -4.708337742504409171076,
			2.450192350088183421517, 2.450192350088183421517,
			-4.708337742504409171076, 4.319301146384479717813,
			-1.819664627425044091711, 0.7585088734567901234568,
		},
	},
}

// ncohTable holds open half Newton-Cotes rules on [-1,1].
var ncohTable = map[int]tabulated{
	1: {
		x: []float64{
			0.0,
		},
		w: []float64{
			2.0,
		},
	},
	2: {
		x: []float64{
			-0.5, 0.5,
		},
		w: []float64{
			1.0, 1.0,
		},
	},
	3: {
		x: []float64{
			-0.6666666666666666666667, 0.0,
			0.6666666666666666666667,
		},
		w: []float64{
			0.75, 0.5,
			0.75,
		},
	},
	4: {
		x: []float64{
			-0.75, -0.25,
			0.25, 0.75,
		},
		w: []float64{
			0.5416666666666666666667, 0.4583333333333333333333,
			0.4583333333333333333333, 0.5416666666666666666667,
		},
	},
	5: {
		x: []float64{
			-0.8, -0.4,
			0.0, 0.4,
			0.8,
		},
		w: []float64{
			0.4774305555555555555556, 0.1736111111111111111111,
			0.6979166666666666666667, 0.1736111111111111111111,
			0.4774305555555555555556,
		},
	},
	6: {
		x: []float64{
			-0.8333333333333333333333, -0.5,
			-0.1666666666666666666667, 0.1666666666666666666667,
			0.5, 0.8333333333333333333333,
		},
		w: []float64{
			0.3859375, 0.2171875,
			0.396875, 0.396875,
			0.2171875, 0.3859375,
		},
	},
	7: {
		x: []float64{
			-0.8571428571428571428571, -0.5714285714285714285714,
			-0.2857142857142857142857, 0.0,
			0.2857142857142857142857, 0.5714285714285714285714,
			0.8571428571428571428571,
		},
		w: []float64{
			0.3580005787037037037037, 0.01276041666666666666667,
			0.8102864583333333333333, -0.3620949074074074074074,
			0.8102864583333333333333, 0.01276041666666666666667,
			0.3580005787037037037037,
		},
	},
	8: {
		x: []float64{
			-0.875, -0.625,
			-0.375, -0.125,
			0.125, 0.375,
			0.625, 0.875,
		},
		w: []float64{
			0.3055007853835978835979, 0.07371135085978835978836,
			0.4875279017857142857143, 0.1332599619708994708995,
			0.1332599619708994708995, 0.4875279017857142857143,
			0.07371135085978835978836, 0.3055007853835978835979,
		},
	},
	9: {
		x: []float64{
			-0.8888888888888888888889, -0.6666666666666666666667,
			-0.4444444444444444444444, -0.2222222222222222222222,
			0.0, 0.2222222222222222222222,
			0.4444444444444444444444, 0.6666666666666666666667,
			0.8888888888888888888889,
		},
		w: []float64{
			0.2902556501116071428571, -0.09096261160714285714286,
			1.012537667410714285714, -1.125577566964285714286,
			1.827493722098214285714, -1.125577566964285714286,
			1.012537667410714285714, -0.09096261160714285714286,
			0.2902556501116071428571,
		},
	},
	10: {
		x: []float64{
			-0.9, -0.7,
			-0.5, -0.3,
			-0.1, 0.1,
			0.3, 0.5,
			0.7, 0.9,
		},
		w: []float64{
			0.2557278856819058641975, -0.02652149772307649911817,
			0.6604044811645723104056, -0.3376966473076499118166,
			0.4480857781842482363316, 0.4480857781842482363316,
			-0.3376966473076499118166, 0.6604044811645723104056,
			-0.02652149772307649911817, 0.2557278856819058641975,
		},
	},
}
