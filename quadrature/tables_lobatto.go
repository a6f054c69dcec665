package quadrature

// lobattoTable holds Gauss-Lobatto rules on [-1,1], endpoints included.
var lobattoTable = map[int]tabulated{
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
			-1.0, -0.4472135954999579392818,
			0.4472135954999579392818, 1.0,
		},
		w: []float64{
			0.1666666666666666666667, 0.8333333333333333333333,
			0.8333333333333333333333, 0.1666666666666666666667,
		},
	},
	5: {
		x: []float64{
			-1.0, -0.6546536707079771437983,
			0.0, 0.6546536707079771437983,
			1.0,
		},
		w: []float64{
			0.1, 0.5444444444444444444444,
			0.7111111111111111111111, 0.5444444444444444444444,
			0.1,
		},
	},
	6: {
		x: []float64{
			-1.0, -0.7650553239294646928510,
			-0.2852315164806450963142, 0.2852315164806450963142,
			0.7650553239294646928510, 1.0,
		},
		w: []float64{
			0.06666666666666666666667, 0.3784749562978469803166,
			0.5548583770354863530167, 0.5548583770354863530167,
			0.3784749562978469803166, 0.06666666666666666666667,
		},
	},
	7: {
		x: []float64{
			-1.0, -0.8302238962785669298720,
			-0.4688487934707142138038, 0.0,
			0.4688487934707142138038, 0.8302238962785669298720,
			1.0,
		},
		w: []float64{
			0.04761904761904761904762, 0.2768260473615659480107,
			0.4317453812098626234179, 0.4876190476190476190476,
			0.4317453812098626234179, 0.2768260473615659480107,
			0.04761904761904761904762,
		},
	},
	8: {
		x: []float64{
			-1.0, -0.8717401485096066153374,
			-0.5917001814331423021445, -0.2092992179024788687687,
			0.2092992179024788687687, 0.5917001814331423021445,
			0.8717401485096066153374, 1.0,
		},
		w: []float64{
			0.03571428571428571428571, 0.2107042271435060393830,
			0.3411226924835043647642, 0.4124587946587038815671,
			0.4124587946587038815671, 0.3411226924835043647642,
			0.2107042271435060393830, 0.03571428571428571428571,
		},
	},
	9: {
		x: []float64{
			-1.0, -0.8997579954114601573123,
			-0.6771862795107377534459, -0.3631174638261781587108,
			0.0, 0.3631174638261781587108,
			0.6771862795107377534459, 0.8997579954114601573123,
			1.0,
		},
		w: []float64{
			0.02777777777777777777778, 0.1654953615608055250463,
			0.2745387125001617352807, 0.3464285109730463451151,
			0.3715192743764172335601, 0.3464285109730463451151,
			0.2745387125001617352807, 0.1654953615608055250463,
			0.02777777777777777777778,
		},
	},
	10: {
		x: []float64{
			-1.0, -0.9195339081664588138289,
			-0.7387738651055050750031, -0.4779249498104444956612,
			-0.1652789576663870246262, 0.1652789576663870246262,
			0.4779249498104444956612, 0.7387738651055050750031,
			0.9195339081664588138289, 1.0,
		},
		w: []float64{
			0.02222222222222222222222, 0.1333059908510701111262,
			0.2248893420631264521195, 0.2920426836796837578756,
			0.3275397611838974566565, 0.3275397611838974566565,
			0.2920426836796837578756, 0.2248893420631264521195,
			0.1333059908510701111262, 0.02222222222222222222222,
		},
	},
	11: {
		x: []float64{
			-1.0, -0.9340014304080591343323,
			-0.7844834736631444186224, -0.5652353269962050064710,
			-0.2957581355869393914319, 0.0,
			0.2957581355869393914319, 0.5652353269962050064710,
			0.7844834736631444186224, 0.9340014304080591343323,
			1.0,
		},
		w: []float64{
			0.01818181818181818181818, 0.1096122732669948644614,
			0.1871698817803052041081, 0.2480481042640283140401,
			0.2868791247790080886792, 0.3002175954556906937859,
			0.2868791247790080886792, 0.2480481042640283140401,
			0.1871698817803052041081, 0.1096122732669948644614,
			0.01818181818181818181818,
		},
	},
	12: {
		x: []float64{
			-1.0, -0.9448992722228822234076,
			-0.8192793216440066783486, -0.6328761530318606776624,
			-0.3995309409653489322643, -0.1365529328549275548641,
			0.1365529328549275548641, 0.3995309409653489322643,
			0.6328761530318606776624, 0.8192793216440066783486,
			0.9448992722228822234076, 1.0,
		},
		w: []float64{
			0.01515151515151515151515, 0.09168451741319613066834,
			0.1579747055643701151647, 0.2125084177610211453583,
			0.2512756031992012802932, 0.2714052409106961770003,
			0.2714052409106961770003, 0.2512756031992012802932,
			0.2125084177610211453583, 0.1579747055643701151647,
			0.09168451741319613066834, 0.01515151515151515151515,
		},
	},
	13: {
		x: []float64{
			-1.0, -0.9533098466421639118969,
			-0.8463475646518723168659, -0.6861884690817574260728,
			-0.4829098210913362017469, -0.2492869301062399925687,
			0.0, 0.2492869301062399925687,
			0.4829098210913362017469, 0.6861884690817574260728,
			0.8463475646518723168659, 0.9533098466421639118969,
			1.0,
		},
		w: []float64{
			0.01282051282051282051282, 0.07780168674681892779359,
			0.1349819266896083491199, 0.1836468652035500920075,
			0.2207677935661100860855, 0.2440157903066763564586,
			0.2519308493334467360441, 0.2440157903066763564586,
			0.2207677935661100860855, 0.1836468652035500920075,
			0.1349819266896083491199, 0.07780168674681892779359,
			0.01282051282051282051282,
		},
	},
	14: {
		x: []float64{
			-1.0, -0.9599350452672609013551,
			-0.8678010538303472510002, -0.7288685990913261405847,
			-0.5506394029286470553166, -0.3427240133427128450439,
			-0.1163318688837038676588, 0.1163318688837038676588,
			0.3427240133427128450439, 0.5506394029286470553166,
			0.7288685990913261405847, 0.8678010538303472510002,
			0.9599350452672609013551, 1.0,
		},
		w: []float64{
			0.01098901098901098901099, 0.06683728449768128463407,
			0.1165866558987116515410, 0.1600218517629521424128,
			0.1948261493734161186403, 0.2191262530097707548712,
			0.2316127944684570588896, 0.2316127944684570588896,
			0.2191262530097707548712, 0.1948261493734161186403,
			0.1600218517629521424128, 0.1165866558987116515410,
			0.06683728449768128463407, 0.01098901098901098901099,
		},
	},
	15: {
		x: []float64{
			-1.0, -0.9652459265038385727959,
			-0.8850820442229762988254, -0.7635196899518152007041,
			-0.6062532054698457111235, -0.4206380547136724809219,
			-0.2153539553637942382257, 0.0,
			0.2153539553637942382257, 0.4206380547136724809219,
			0.6062532054698457111235, 0.7635196899518152007041,
			0.8850820442229762988254, 0.9652459265038385727959,
			1.0,
		},
		w: []float64{
			0.009523809523809523809524, 0.05802989302860124909688,
			0.1016600703257180676037, 0.1405116998024281094604,
			0.1727896472536009490521, 0.1969872359646133560925,
			0.2119735859268209201274, 0.2170481163488156495150,
			0.2119735859268209201274, 0.1969872359646133560925,
			0.1727896472536009490521, 0.1405116998024281094604,
			0.1016600703257180676037, 0.05802989302860124909688,
			0.009523809523809523809524,
		},
	},
	16: {
		x: []float64{
			-1.0, -0.9695680462702179329522,
			-0.8992005330934720929946, -0.7920082918618150639311,
			-0.6523887028824930894679, -0.4860594218871376117819,
			-0.2998304689007632080984, -0.1013262735219494478430,
			0.1013262735219494478430, 0.2998304689007632080984,
			0.4860594218871376117819, 0.6523887028824930894679,
			0.7920082918618150639311, 0.8992005330934720929946,
			0.9695680462702179329522, 1.0,
		},
		w: []float64{
			0.008333333333333333333333, 0.05085036100591990540324,
			0.08939369732593080099105, 0.1242553821325140983495,
			0.1540269808071642808156, 0.1774919133917041253011,
			0.1936900238252035843169, 0.2019583081782298714892,
			0.2019583081782298714892, 0.1936900238252035843169,
			0.1774919133917041253011, 0.1540269808071642808156,
			0.1242553821325140983495, 0.08939369732593080099105,
			0.05085036100591990540324, 0.008333333333333333333333,
		},
	},
	17: {
		x: []float64{
			-1.0, -0.9731321766314183141570,
			-0.9108799959155735956238, -0.8156962512217703071068,
			-0.6910289806276847053949, -0.5413853993301015391237,
			-0.3721744335654770419072, -0.1895119735183173883043,
			0.0, 0.1895119735183173883043,
			0.3721744335654770419072, 0.5413853993301015391237,
			0.6910289806276847053949, 0.8156962512217703071068,
			0.9108799959155735956238, 0.9731321766314183141570,
			1.0,
		},
		w: []float64{
			0.007352941176470588235294, 0.04492194054325420964740,
			0.07919827050368711919026, 0.1105929090070281613758,
			0.1379877462019265590562, 0.1603946619976215395163,
			0.1770042535156578704369, 0.1872163396776192358921,
			0.1906618747534694332994, 0.1872163396776192358921,
			0.1770042535156578704369, 0.1603946619976215395163,
			0.1379877462019265590562, 0.1105929090070281613758,
			0.07919827050368711919026, 0.04492194054325420964740,
			0.007352941176470588235294,
		},
	},
	18: {
		x: []float64{
			-1.0, -0.9761055574121985428645,
			-0.9206491853475338738379, -0.8355935352180902137136,
			-0.7236793292832426813062, -0.5885048343186617611735,
			-0.4344150369121239753423, -0.2663626528782809841677,
			-0.08974909348465211102265, 0.08974909348465211102265,
			0.2663626528782809841677, 0.4344150369121239753423,
			0.5885048343186617611735, 0.7236793292832426813062,
			0.8355935352180902137136, 0.9206491853475338738379,
			0.9761055574121985428645, 1.0,
		},
		w: []float64{
			0.006535947712418300653595, 0.03997062881091406613760,
			0.07063716688563366499922, 0.09901627171750280239442,
			0.1242105331329671002634, 0.1454119615738022679830,
			0.1619395172376024892643, 0.1732621094894562260106,
			0.1790158634397030822938, 0.1790158634397030822938,
			0.1732621094894562260106, 0.1619395172376024892643,
			0.1454119615738022679830, 0.1242105331329671002634,
			0.09901627171750280239442, 0.07063716688563366499922,
			0.03997062881091406613760, 0.006535947712418300653595,
		},
	},
	19: {
		x: []float64{
			-1.0, -0.9786117662220800951526,
			-0.9289015281525862437179, -0.8524605777966460930860,
			-0.7514942025526130141636, -0.6289081372652204977668,
			-0.4882292856807135027779, -0.3335048478244986102985,
			-0.1691860234092815713752, 0.0,
			0.1691860234092815713752, 0.3335048478244986102985,
			0.4882292856807135027779, 0.6289081372652204977668,
			0.7514942025526130141636, 0.8524605777966460930860,
			0.9289015281525862437179, 0.9786117662220800951526,
			1.0,
		},
		w: []float64{
			0.005847953216374269005848, 0.03579336518617647711543,
			0.06338189176262973685170, 0.08913175709920708444801,
			0.1123153414773050440709, 0.1322672804487507769260,
			0.1484139425959388850097, 0.1602909240440612419799,
			0.1675565845271428672701, 0.1700019192848272346447,
			0.1675565845271428672701, 0.1602909240440612419799,
			0.1484139425959388850097, 0.1322672804487507769260,
			0.1123153414773050440709, 0.08913175709920708444801,
			0.06338189176262973685170, 0.03579336518617647711543,
			0.005847953216374269005848,
		},
	},
	20: {
		x: []float64{
			-1.0, -0.9807437048939141719254,
			-0.9359344988126654357162, -0.8668779780899501413098,
			-0.7753682609520558704143, -0.6637764022903112898464,
			-0.5349928640318862616481, -0.3923531837139092993865,
			-0.2395517059229864951824, -0.08054593723882183797594,
			0.08054593723882183797594, 0.2395517059229864951824,
			0.3923531837139092993865, 0.5349928640318862616481,
			0.6637764022903112898464, 0.7753682609520558704143,
			0.8668779780899501413098, 0.9359344988126654357162,
			0.9807437048939141719254, 1.0,
		},
		w: []float64{
			0.005263157894736842105263, 0.03223712318848894149161,
			0.05718180212756682600475, 0.08063176399611960314478,
			0.1019914996994508156838, 0.1207092276286747250994,
			0.1363004823587241844898, 0.1483615540709168258147,
			0.1565801026474754871582, 0.1607432863878457490077,
			0.1607432863878457490077, 0.1565801026474754871582,
			0.1483615540709168258147, 0.1363004823587241844898,
			0.1207092276286747250994, 0.1019914996994508156838,
			0.08063176399611960314478, 0.05718180212756682600475,
			0.03223712318848894149161, 0.005263157894736842105263,
		},
	},
}
