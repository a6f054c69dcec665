package quadrature

// legendreTable holds Gauss-Legendre rules for weight 1 on [-1,1].
var legendreTable = map[int]tabulated{
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
			-0.5773502691896257645091, 0.5773502691896257645091,
		},
		w: []float64{
			1.000000000000000000000, 1.000000000000000000000,
		},
	},
	3: {
		x: []float64{
			-0.7745966692414833770359, 0.0,
			0.7745966692414833770359,
		},
		w: []float64{
			0.5555555555555555555556, 0.8888888888888888888889,
			0.5555555555555555555556,
		},
	},
	4: {
		x: []float64{
			-0.8611363115940525752239, -0.3399810435848562648027,
			0.3399810435848562648027, 0.8611363115940525752239,
		},
		w: []float64{
			0.3478548451374538573731, 0.6521451548625461426269,
			0.6521451548625461426269, 0.3478548451374538573731,
		},
	},
	5: {
		x: []float64{
			-0.9061798459386639927976, -0.5384693101056830910363,
			0.0, 0.5384693101056830910363,
			0.9061798459386639927976,
		},
		w: []float64{
			0.2369268850561890875143, 0.4786286704993664680413,
			0.5688888888888888888889, 0.4786286704993664680413,
			0.2369268850561890875143,
		},
	},
	6: {
		x: []float64{
			-0.9324695142031520278123, -0.6612093864662645136614,
			-0.2386191860831969086305, 0.2386191860831969086305,
			0.6612093864662645136614, 0.9324695142031520278123,
		},
		w: []float64{
			0.1713244923791703450403, 0.3607615730481386075698,
			0.4679139345726910473899, 0.4679139345726910473899,
			0.3607615730481386075698, 0.1713244923791703450403,
		},
	},
	7: {
		x: []float64{
			-0.9491079123427585245262, -0.7415311855993944398639,
			-0.4058451513773971669066, 0.0,
			0.4058451513773971669066, 0.7415311855993944398639,
			0.9491079123427585245262,
		},
		w: []float64{
			0.1294849661688696932706, 0.2797053914892766679015,
			0.3818300505051189449504, 0.4179591836734693877551,
			0.3818300505051189449504, 0.2797053914892766679015,
			0.1294849661688696932706,
		},
	},
	8: {
		x: []float64{
			-0.9602898564975362316836, -0.7966664774136267395916,
			-0.5255324099163289858177, -0.1834346424956498049395,
			0.1834346424956498049395, 0.5255324099163289858177,
			0.7966664774136267395916, 0.9602898564975362316836,
		},
		w: []float64{
			0.1012285362903762591525, 0.2223810344533744705444,
			0.3137066458778872873380, 0.3626837833783619829652,
			0.3626837833783619829652, 0.3137066458778872873380,
			0.2223810344533744705444, 0.1012285362903762591525,
		},
	},
	9: {
		x: []float64{
			-0.9681602395076260898356, -0.8360311073266357942994,
			-0.6133714327005903973087, -0.3242534234038089290385,
			0.0, 0.3242534234038089290385,
			0.6133714327005903973087, 0.8360311073266357942994,
			0.9681602395076260898356,
		},
		w: []float64{
			0.08127438836157441197189, 0.1806481606948574040585,
			0.2606106964029354623187, 0.3123470770400028400686,
			0.3302393550012597631645, 0.3123470770400028400686,
			0.2606106964029354623187, 0.1806481606948574040585,
			0.08127438836157441197189,
		},
	},
	10: {
		x: []float64{
			-0.9739065285171717200780, -0.8650633666889845107321,
			-0.6794095682990244062343, -0.4333953941292471907993,
			-0.1488743389816312108848, 0.1488743389816312108848,
			0.4333953941292471907993, 0.6794095682990244062343,
			0.8650633666889845107321, 0.9739065285171717200780,
		},
		w: []float64{
			0.06667134430868813759357, 0.1494513491505805931458,
			0.2190863625159820439955, 0.2692667193099963550912,
			0.2955242247147528701739, 0.2955242247147528701739,
			0.2692667193099963550912, 0.2190863625159820439955,
			0.1494513491505805931458, 0.06667134430868813759357,
		},
	},
	11: {
		x: []float64{
			-0.9782286581460569928039, -0.8870625997680952990752,
			-0.7301520055740493240934, -0.5190961292068118159257,
			-0.2695431559523449723315, 0.0,
			0.2695431559523449723315, 0.5190961292068118159257,
			0.7301520055740493240934, 0.8870625997680952990752,
			0.9782286581460569928039,
		},
		w: []float64{
			0.05566856711617366648275, 0.1255803694649046246347,
			0.1862902109277342514261, 0.2331937645919904799185,
			0.2628045445102466621807, 0.2729250867779006307145,
			0.2628045445102466621807, 0.2331937645919904799185,
			0.1862902109277342514261, 0.1255803694649046246347,
			0.05566856711617366648275,
		},
	},
	12: {
		x: []float64{
			-0.9815606342467192506905, -0.9041172563704748566785,
			-0.7699026741943046870369, -0.5873179542866174472967,
			-0.3678314989981801937527, -0.1252334085114689154724,
			0.1252334085114689154724, 0.3678314989981801937527,
			0.5873179542866174472967, 0.7699026741943046870369,
			0.9041172563704748566785, 0.9815606342467192506905,
		},
		w: []float64{
			0.04717533638651182719462, 0.1069393259953184309603,
			0.1600783285433462263347, 0.2031674267230659217491,
			0.2334925365383548087608, 0.2491470458134027850006,
			0.2491470458134027850006, 0.2334925365383548087608,
			0.2031674267230659217491, 0.1600783285433462263347,
			0.1069393259953184309603, 0.04717533638651182719462,
		},
	},
	13: {
		x: []float64{
			-0.9841830547185881494728, -0.9175983992229779652065,
			-0.8015780907333099127942, -0.6423493394403402206440,
			-0.4484927510364468528779, -0.2304583159551347940655,
			0.0, 0.2304583159551347940655,
			0.4484927510364468528779, 0.6423493394403402206440,
			0.8015780907333099127942, 0.9175983992229779652065,
			0.9841830547185881494728,
		},
		w: []float64{
			0.04048400476531587952002, 0.09212149983772844791442,
			0.1388735102197872384636, 0.1781459807619457382800,
			0.2078160475368885023125, 0.2262831802628972384121,
			0.2325515532308739101946, 0.2262831802628972384121,
			0.2078160475368885023125, 0.1781459807619457382800,
			0.1388735102197872384636, 0.09212149983772844791442,
			0.04048400476531587952002,
		},
	},
	14: {
		x: []float64{
			-0.9862838086968123388416, -0.9284348836635735173364,
			-0.8272013150697649931898, -0.6872929048116854701480,
			-0.5152486363581540919653, -0.3191123689278897604357,
			-0.1080549487073436620662, 0.1080549487073436620662,
			0.3191123689278897604357, 0.5152486363581540919653,
			0.6872929048116854701480, 0.8272013150697649931898,
			0.9284348836635735173364, 0.9862838086968123388416,
		},
		w: []float64{
			0.03511946033175186303183, 0.08015808715976020980563,
			0.1215185706879031846894, 0.1572031671581935345696,
			0.1855383974779378137417, 0.2051984637212956039659,
			0.2152638534631577901959, 0.2152638534631577901959,
			0.2051984637212956039659, 0.1855383974779378137417,
			0.1572031671581935345696, 0.1215185706879031846894,
			0.08015808715976020980563, 0.03511946033175186303183,
		},
	},
	15: {
		x: []float64{
			-0.9879925180204854284896, -0.9372733924007059043078,
			-0.8482065834104272162006, -0.7244177313601700474162,
			-0.5709721726085388475372, -0.3941513470775633698972,
			-0.2011940939974345223006, 0.0,
			0.2011940939974345223006, 0.3941513470775633698972,
			0.5709721726085388475372, 0.7244177313601700474162,
			0.8482065834104272162006, 0.9372733924007059043078,
			0.9879925180204854284896,
		},
		w: []float64{
			0.03075324199611726835463, 0.07036604748810812470927,
			0.1071592204671719350119, 0.1395706779261543144478,
			0.1662692058169939335532, 0.1861610000155622110268,
			0.1984314853271115764561, 0.2025782419255612728806,
			0.1984314853271115764561, 0.1861610000155622110268,
			0.1662692058169939335532, 0.1395706779261543144478,
			0.1071592204671719350119, 0.07036604748810812470927,
			0.03075324199611726835463,
		},
	},
	16: {
		x: []float64{
			-0.9894009349916499325962, -0.9445750230732325760780,
			-0.8656312023878317438805, -0.7554044083550030338951,
			-0.6178762444026437484467, -0.4580167776572273863424,
			-0.2816035507792589132305, -0.09501250983763744018532,
			0.09501250983763744018532, 0.2816035507792589132305,
			0.4580167776572273863424, 0.6178762444026437484467,
			0.7554044083550030338951, 0.8656312023878317438805,
			0.9445750230732325760780, 0.9894009349916499325962,
		},
		w: []float64{
			0.02715245941175409485178, 0.06225352393864789286284,
			0.09515851168249278480993, 0.1246289712555338720525,
			0.1495959888165767320815, 0.1691565193950025381893,
			0.1826034150449235888668, 0.1894506104550684962854,
			0.1894506104550684962854, 0.1826034150449235888668,
			0.1691565193950025381893, 0.1495959888165767320815,
			0.1246289712555338720525, 0.09515851168249278480993,
			0.06225352393864789286284, 0.02715245941175409485178,
		},
	},
	17: {
		x: []float64{
			-0.9905754753144173356754, -0.9506755217687677612227,
			-0.8802391537269859021230, -0.7815140038968014069252,
			-0.6576711592166907658503, -0.5126905370864769678862,
			-0.3512317634538763152972, -0.1784841814958478558507,
			0.0, 0.1784841814958478558507,
			0.3512317634538763152972, 0.5126905370864769678862,
			0.6576711592166907658503, 0.7815140038968014069252,
			0.8802391537269859021230, 0.9506755217687677612227,
			0.9905754753144173356754,
		},
		w: []float64{
			0.02414830286854793196011, 0.05545952937398720112944,
			0.08503614831717918088354, 0.1118838471934039710948,
			0.1351363684685254732863, 0.1540457610768102880814,
			0.1680041021564500445100, 0.1765627053669926463253,
			0.1794464703562065254583, 0.1765627053669926463253,
			0.1680041021564500445100, 0.1540457610768102880814,
			0.1351363684685254732863, 0.1118838471934039710948,
			0.08503614831717918088354, 0.05545952937398720112944,
			0.02414830286854793196011,
		},
	},
	18: {
		x: []float64{
			-0.9915651684209309467300, -0.9558239495713977551812,
			-0.8926024664975557392061, -0.8037049589725231156824,
			-0.6916870430603532078749, -0.5597708310739475346079,
			-0.4117511614628426460359, -0.2518862256915055095890,
			-0.08477501304173530124226, 0.08477501304173530124226,
			0.2518862256915055095890, 0.4117511614628426460359,
			0.5597708310739475346079, 0.6916870430603532078749,
			0.8037049589725231156824, 0.8926024664975557392061,
			0.9558239495713977551812, 0.9915651684209309467300,
		},
		w: []float64{
			0.02161601352648331031334, 0.04971454889496979645333,
			0.07642573025488905652913, 0.1009420441062871655628,
			0.1225552067114784601845, 0.1406429146706506512047,
			0.1546846751262652449254, 0.1642764837458327229861,
			0.1691423829631435918407, 0.1691423829631435918407,
			0.1642764837458327229861, 0.1546846751262652449254,
			0.1406429146706506512047, 0.1225552067114784601845,
			0.1009420441062871655628, 0.07642573025488905652913,
			0.04971454889496979645333, 0.02161601352648331031334,
		},
	},
	19: {
		x: []float64{
			-0.9924068438435844031890, -0.9602081521348300308528,
			-0.9031559036148179016427, -0.8227146565371428249789,
			-0.7209661773352293786171, -0.6005453046616810234696,
			-0.4645707413759609457173, -0.3165640999636298319901,
			-0.1603586456402253758681, 0.0,
			0.1603586456402253758681, 0.3165640999636298319901,
			0.4645707413759609457173, 0.6005453046616810234696,
			0.7209661773352293786171, 0.8227146565371428249789,
			0.9031559036148179016427, 0.9602081521348300308528,
			0.9924068438435844031890,
		},
		w: []float64{
			0.01946178822972647703631, 0.04481422676569960033284,
			0.06904454273764122658071, 0.09149002162244999946446,
			0.1115666455473339947160, 0.1287539625393362276755,
			0.1426067021736066117757, 0.1527660420658596667789,
			0.1589688433939543476500, 0.1610544498487836959792,
			0.1589688433939543476500, 0.1527660420658596667789,
			0.1426067021736066117757, 0.1287539625393362276755,
			0.1115666455473339947160, 0.09149002162244999946446,
			0.06904454273764122658071, 0.04481422676569960033284,
			0.01946178822972647703631,
		},
	},
	20: {
		x: []float64{
			-0.9931285991850949247861, -0.9639719272779137912677,
			-0.9122344282513259058678, -0.8391169718222188233945,
			-0.7463319064601507926143, -0.6360536807265150254528,
			-0.5108670019508270980044, -0.3737060887154195606725,
			-0.2277858511416450780805, -0.07652652113349733375464,
			0.07652652113349733375464, 0.2277858511416450780805,
			0.3737060887154195606725, 0.5108670019508270980044,
			0.6360536807265150254528, 0.7463319064601507926143,
			0.8391169718222188233945, 0.9122344282513259058678,
			0.9639719272779137912677, 0.9931285991850949247861,
		},
		w: []float64{
			0.01761400713915211831186, 0.04060142980038694133104,
			0.06267204833410906356951, 0.08327674157670474872476,
			0.1019301198172404350368, 0.1181945319615184173124,
			0.1316886384491766268985, 0.1420961093183820513293,
			0.1491729864726037467878, 0.1527533871307258506981,
			0.1527533871307258506981, 0.1491729864726037467878,
			0.1420961093183820513293, 0.1316886384491766268985,
			0.1181945319615184173124, 0.1019301198172404350368,
			0.08327674157670474872476, 0.06267204833410906356951,
			0.04060142980038694133104, 0.01761400713915211831186,
		},
	},
	21: {
		x: []float64{
			-0.9937521706203895002602, -0.9672268385663062943166,
			-0.9200993341504008287902, -0.8533633645833172836473,
			-0.7684399634756779086159, -0.6671388041974123193060,
			-0.5516188358872198070590, -0.4243421202074387835737,
			-0.2880213168024010966008, -0.1455618541608950909370,
			0.0, 0.1455618541608950909370,
			0.2880213168024010966008, 0.4243421202074387835737,
			0.5516188358872198070590, 0.6671388041974123193060,
			0.7684399634756779086159, 0.8533633645833172836473,
			0.9200993341504008287902, 0.9672268385663062943166,
			0.9937521706203895002602,
		},
		w: []float64{
			0.01601722825777433332422, 0.03695378977085249379995,
			0.05713442542685720828364, 0.07610011362837930201705,
			0.09344442345603386155329, 0.1087972991671483776635,
			0.1218314160537285341954, 0.1322689386333374617811,
			0.1398873947910731547221, 0.1445244039899700590638,
			0.1460811336496904271920, 0.1445244039899700590638,
			0.1398873947910731547221, 0.1322689386333374617811,
			0.1218314160537285341954, 0.1087972991671483776635,
			0.09344442345603386155329, 0.07610011362837930201705,
			0.05713442542685720828364, 0.03695378977085249379995,
			0.01601722825777433332422,
		},
	},
	22: {
		x: []float64{
			-0.9942945854823992920730, -0.9700604978354287271240,
			-0.9269567721871740005207, -0.8658125777203001365364,
			-0.7878168059792081620043, -0.6944872631866827800507,
			-0.5876404035069115929589, -0.4693558379867570264063,
			-0.3419358208920842251581, -0.2078604266882212854788,
			-0.06973927331972222121384, 0.06973927331972222121384,
			0.2078604266882212854788, 0.3419358208920842251581,
			0.4693558379867570264063, 0.5876404035069115929589,
			0.6944872631866827800507, 0.7878168059792081620043,
			0.8658125777203001365364, 0.9269567721871740005207,
			0.9700604978354287271240, 0.9942945854823992920730,
		},
		w: []float64{
			0.01462799529827220068499, 0.03377490158481415479330,
			0.05229333515268328594031, 0.06979646842452048809496,
			0.08594160621706772741444, 0.1004141444428809649321,
			0.1129322960805392183934, 0.1232523768105124242856,
			0.1311735047870623707330, 0.1365414983460151713526,
			0.1392518728556319933754, 0.1392518728556319933754,
			0.1365414983460151713526, 0.1311735047870623707330,
			0.1232523768105124242856, 0.1129322960805392183934,
			0.1004141444428809649321, 0.08594160621706772741444,
			0.06979646842452048809496, 0.05229333515268328594031,
			0.03377490158481415479330, 0.01462799529827220068499,
		},
	},
	23: {
		x: []float64{
			-0.9947693349975521235239, -0.9725424712181152319560,
			-0.9329710868260161023492, -0.8767523582704416673782,
			-0.8048884016188398921511, -0.7186613631319501944616,
			-0.6196098757636461563851, -0.5095014778460075496898,
			-0.3903010380302908314215, -0.2641356809703449305339,
			-0.1332568242984661109317, 0.0,
			0.1332568242984661109317, 0.2641356809703449305339,
			0.3903010380302908314215, 0.5095014778460075496898,
			0.6196098757636461563851, 0.7186613631319501944616,
			0.8048884016188398921511, 0.8767523582704416673782,
			0.9329710868260161023492, 0.9725424712181152319560,
			0.9947693349975521235239,
		},
		w: []float64{
			0.01341185948714177208131, 0.03098800585697944431069,
			0.04803767173108466857164, 0.06423242140852585212717,
			0.07928141177671895492289, 0.09291576606003514747702,
			0.1048920914645414100741, 0.1149966402224113649416,
			0.1230490843067295304676, 0.1289057221880821499786,
			0.1324620394046966173716, 0.1336545721861061753515,
			0.1324620394046966173716, 0.1289057221880821499786,
			0.1230490843067295304676, 0.1149966402224113649416,
			0.1048920914645414100741, 0.09291576606003514747702,
			0.07928141177671895492289, 0.06423242140852585212717,
			0.04803767173108466857164, 0.03098800585697944431069,
			0.01341185948714177208131,
		},
	},
	24: {
		x: []float64{
			-0.9951872199970213601800, -0.9747285559713094981984,
			-0.9382745520027327585236, -0.8864155270044010342132,
			-0.8200019859739029219539, -0.7401241915785543642438,
			-0.6480936519369755692525, -0.5454214713888395356584,
			-0.4337935076260451384871, -0.3150426796961633743868,
			-0.1911188674736163091586, -0.06405689286260562608504,
			0.06405689286260562608504, 0.1911188674736163091586,
			0.3150426796961633743868, 0.4337935076260451384871,
			0.5454214713888395356584, 0.6480936519369755692525,
			0.7401241915785543642438, 0.8200019859739029219539,
			0.8864155270044010342132, 0.9382745520027327585236,
			0.9747285559713094981984, 0.9951872199970213601800,
		},
		w: []float64{
			0.01234122979998719954681, 0.02853138862893366318131,
			0.04427743881741980616860, 0.05929858491543678074637,
			0.07334648141108030573403, 0.08619016153195327591719,
			0.09761865210411388826988, 0.1074442701159656347826,
			0.1155056680537256013533, 0.1216704729278033912045,
			0.1258374563468282961214, 0.1279381953467521569741,
			0.1279381953467521569741, 0.1258374563468282961214,
			0.1216704729278033912045, 0.1155056680537256013533,
			0.1074442701159656347826, 0.09761865210411388826988,
			0.08619016153195327591719, 0.07334648141108030573403,
			0.05929858491543678074637, 0.04427743881741980616860,
			0.02853138862893366318131, 0.01234122979998719954681,
		},
	},
	25: {
		x: []float64{
			-0.9955569697904980979088, -0.9766639214595175114983,
			-0.9429745712289743394140, -0.8949919978782753688510,
			-0.8334426287608340014210, -0.7592592630373576305773,
			-0.6735663684734683644851, -0.5776629302412229677237,
			-0.4730027314457149605222, -0.3611723058093878377358,
			-0.2438668837209884320452, -0.1228646926107103963874,
			0.0, 0.1228646926107103963874,
			0.2438668837209884320452, 0.3611723058093878377358,
			0.4730027314457149605222, 0.5776629302412229677237,
			0.6735663684734683644851, 0.7592592630373576305773,
			0.8334426287608340014210, 0.8949919978782753688510,
			0.9429745712289743394140, 0.9766639214595175114983,
			0.9955569697904980979088,
		},
		w: []float64{
			0.01139379850102628794790, 0.02635498661503213726190,
			0.04093915670130631265562, 0.05490469597583519192594,
			0.06803833381235691720719, 0.08014070033500101801323,
			0.09102826198296364981150, 0.1005359490670506442022,
			0.1085196244742636531161, 0.1148582591457116483393,
			0.1194557635357847722282, 0.1222424429903100416890,
			0.1231760537267154512039, 0.1222424429903100416890,
			0.1194557635357847722282, 0.1148582591457116483393,
			0.1085196244742636531161, 0.1005359490670506442022,
			0.09102826198296364981150, 0.08014070033500101801323,
			0.06803833381235691720719, 0.05490469597583519192594,
			0.04093915670130631265562, 0.02635498661503213726190,
			0.01139379850102628794790,
		},
	},
	26: {
		x: []float64{
			-0.9958857011456169290032, -0.9783854459564709911006,
			-0.9471590666617142501359, -0.9026378619843070742177,
			-0.8454459427884980187975, -0.7763859488206788561930,
			-0.6964272604199572648638, -0.6066922930176180632320,
			-0.5084407148245057176957, -0.4030517551234863064811,
			-0.2920048394859568951428, -0.1768588203568901839691,
			-0.05923009342931320709372, 0.05923009342931320709372,
			0.1768588203568901839691, 0.2920048394859568951428,
			0.4030517551234863064811, 0.5084407148245057176957,
			0.6066922930176180632320, 0.6964272604199572648638,
			0.7763859488206788561930, 0.8454459427884980187975,
			0.9026378619843070742177, 0.9471590666617142501359,
			0.9783854459564709911006, 0.9958857011456169290032,
		},
		w: []float64{
			0.01055137261734300715565, 0.02441785109263190878962,
			0.03796238329436276395030, 0.05097582529714781199832,
			0.06327404632957483553945, 0.07468414976565974588708,
			0.08504589431348523921045, 0.09421380035591414846366,
			0.1020591610944254232384, 0.1084718405285765906566,
			0.1133618165463196665494, 0.1166604434852965820447,
			0.1183214152792622765164, 0.1183214152792622765164,
			0.1166604434852965820447, 0.1133618165463196665494,
			0.1084718405285765906566, 0.1020591610944254232384,
			0.09421380035591414846366, 0.08504589431348523921045,
			0.07468414976565974588708, 0.06327404632957483553945,
			0.05097582529714781199832, 0.03796238329436276395030,
			0.02441785109263190878962, 0.01055137261734300715565,
		},
	},
	27: {
		x: []float64{
			-0.9961792628889885669389, -0.9799234759615012228559,
			-0.9509005578147050068519, -0.9094823206774911043006,
			-0.8562079080182944903027, -0.7917716390705082271444,
			-0.7170134737394236992948, -0.6329079719464951409277,
			-0.5405515645794568949003, -0.4411482517500268805860,
			-0.3359939036385088997303, -0.2264593654395368588572,
			-0.1139725856095299669329, 0.0,
			0.1139725856095299669329, 0.2264593654395368588572,
			0.3359939036385088997303, 0.4411482517500268805860,
			0.5405515645794568949003, 0.6329079719464951409277,
			0.7170134737394236992948, 0.7917716390705082271444,
			0.8562079080182944903027, 0.9094823206774911043006,
			0.9509005578147050068519, 0.9799234759615012228559,
			0.9961792628889885669389,
		},
		w: []float64{
			0.009798996051294360261150, 0.02268623159618062319603,
			0.03529705375741971102258, 0.04744941252061506270410,
			0.05898353685983359911030, 0.06974882376624559298432,
			0.07960486777305777126307, 0.08842315854375695019432,
			0.09608872737002850756565, 0.1025016378177457986712,
			0.1075782857885331872122, 0.1112524883568451926722,
			0.1134763461089651486204, 0.1142208673789569890450,
			0.1134763461089651486204, 0.1112524883568451926722,
			0.1075782857885331872122, 0.1025016378177457986712,
			0.09608872737002850756565, 0.08842315854375695019432,
			0.07960486777305777126307, 0.06974882376624559298432,
			0.05898353685983359911030, 0.04744941252061506270410,
			0.03529705375741971102258, 0.02268623159618062319603,
			0.009798996051294360261150,
		},
	},
	28: {
		x: []float64{
			-0.9964424975739544499504, -0.9813031653708727536946,
			-0.9542592806289381972541, -0.9156330263921320738697,
			-0.8658925225743950489423, -0.8056413709171791714479,
			-0.7356108780136317720281, -0.6566510940388649612199,
			-0.5697204718114017193080, -0.4758742249551182610344,
			-0.3762515160890787102214, -0.2720616276351780776768,
			-0.1645692821333807712815, -0.05507928988403427042652,
			0.05507928988403427042652, 0.1645692821333807712815,
			0.2720616276351780776768, 0.3762515160890787102214,
			0.4758742249551182610344, 0.5697204718114017193080,
			0.6566510940388649612199, 0.7356108780136317720281,
			0.8056413709171791714479, 0.8658925225743950489423,
			0.9156330263921320738697, 0.9542592806289381972541,
			0.9813031653708727536946, 0.9964424975739544499504,
		},
		w: []float64{
			0.009124282593094517738816, 0.02113211259277125975150,
			0.03290142778230437997763, 0.04427293475900422783959,
			0.05510734567571674543148, 0.06527292396699959579340,
			0.07464621423456877902393, 0.08311341722890121839040,
			0.09057174439303284094219, 0.09693065799792991585049,
			0.1021129675780607698142, 0.1060557659228464179104,
			0.1087111922582941352536, 0.1100470130164751962824,
			0.1100470130164751962824, 0.1087111922582941352536,
			0.1060557659228464179104, 0.1021129675780607698142,
			0.09693065799792991585049, 0.09057174439303284094219,
			0.08311341722890121839040, 0.07464621423456877902393,
			0.06527292396699959579340, 0.05510734567571674543148,
			0.04427293475900422783959, 0.03290142778230437997763,
			0.02113211259277125975150, 0.009124282593094517738816,
		},
	},
	29: {
		x: []float64{
			-0.9966794422605965861632, -0.9825455052614131748709,
			-0.9572855957780877257982, -0.9211802329530587850938,
			-0.8746378049201027904178, -0.8181854876152524449896,
			-0.7524628517344771339126, -0.6782145376026865151562,
			-0.5962817971382278203796, -0.5075929551242276421026,
			-0.4131528881740086638907, -0.3140316378676399349482,
			-0.2113522861660010745064, -0.1062782301326792301710,
			0.0, 0.1062782301326792301710,
			0.2113522861660010745064, 0.3140316378676399349482,
			0.4131528881740086638907, 0.5075929551242276421026,
			0.5962817971382278203796, 0.6782145376026865151562,
			0.7524628517344771339126, 0.8181854876152524449896,
			0.8746378049201027904178, 0.9211802329530587850938,
			0.9572855957780877257982, 0.9825455052614131748709,
			0.9966794422605965861632,
		},
		w: []float64{
			0.008516903878746409654264, 0.01973208505612270598386,
			0.03074049220209362264441, 0.04140206251868283610483,
			0.05159482690249792391259, 0.06120309065707913854211,
			0.07011793325505127856958, 0.07823832713576378382814,
			0.08547225736617252754534, 0.09173775713925876334797,
			0.09696383409440860630190, 0.1010912737599149661218,
			0.1040733100777293739133, 0.1058761550973209414066,
			0.1064793817183142442465, 0.1058761550973209414066,
			0.1040733100777293739133, 0.1010912737599149661218,
			0.09696383409440860630190, 0.09173775713925876334797,
			0.08547225736617252754534, 0.07823832713576378382814,
			0.07011793325505127856958, 0.06120309065707913854211,
			0.05159482690249792391259, 0.04140206251868283610483,
			0.03074049220209362264441, 0.01973208505612270598386,
			0.008516903878746409654264,
		},
	},
	30: {
		x: []float64{
			-0.9968934840746495402716, -0.9836681232797472099700,
			-0.9600218649683075122169, -0.9262000474292743258793,
			-0.8825605357920526815431, -0.8295657623827683974429,
			-0.7677774321048261949180, -0.6978504947933157969323,
			-0.6205261829892428611405, -0.5366241481420198992642,
			-0.4470337695380891767806, -0.3527047255308781134710,
			-0.2546369261678898464398, -0.1538699136085835469638,
			-0.05147184255531769583303, 0.05147184255531769583303,
			0.1538699136085835469638, 0.2546369261678898464398,
			0.3527047255308781134710, 0.4470337695380891767806,
			0.5366241481420198992642, 0.6205261829892428611405,
			0.6978504947933157969323, 0.7677774321048261949180,
			0.8295657623827683974429, 0.8825605357920526815431,
			0.9262000474292743258793, 0.9600218649683075122169,
			0.9836681232797472099700, 0.9968934840746495402716,
		},
		w: []float64{
			0.007968192496166605615466, 0.01846646831109095914230,
			0.02878470788332336934972, 0.03879919256962704959680,
			0.04840267283059405290294, 0.05749315621761906648172,
			0.06597422988218049512813, 0.07375597473770520626824,
			0.08075589522942021535469, 0.08689978720108297980239,
			0.09212252223778612871763, 0.09636873717464425963947,
			0.09959342058679526706278, 0.1017623897484055045964,
			0.1028526528935588403413, 0.1028526528935588403413,
			0.1017623897484055045964, 0.09959342058679526706278,
			0.09636873717464425963947, 0.09212252223778612871763,
			0.08689978720108297980239, 0.08075589522942021535469,
			0.07375597473770520626824, 0.06597422988218049512813,
			0.05749315621761906648172, 0.04840267283059405290294,
			0.03879919256962704959680, 0.02878470788332336934972,
			0.01846646831109095914230, 0.007968192496166605615466,
		},
	},
	31: {
		x: []float64{
			-0.9970874818194770740556, -0.9846859096651524840025,
			-0.9625039250929496617891, -0.9307569978966481649569,
			-0.8897600299482710433742, -0.8399203201462673400869,
			-0.7817331484166249404064, -0.7157767845868532839060,
			-0.6427067229242603461844, -0.5632491614071492627209,
			-0.4781937820449024804406, -0.3883859016082329430614,
			-0.2947180699817016166179, -0.1981211993355706287724,
			-0.09955531215234152032517, 0.0,
			0.09955531215234152032517, 0.1981211993355706287724,
			0.2947180699817016166179, 0.3883859016082329430614,
			0.4781937820449024804406, 0.5632491614071492627209,
			0.6427067229242603461844, 0.7157767845868532839060,
			0.7817331484166249404064, 0.8399203201462673400869,
			0.8897600299482710433742, 0.9307569978966481649569,
			0.9625039250929496617891, 0.9846859096651524840025,
			0.9970874818194770740556,
		},
		w: []float64{
			0.007470831579248775858697, 0.01731862079031058246316,
			0.02700901918497942180061, 0.03643227391238546402439,
			0.04549370752720110290232, 0.05410308242491685371167,
			0.06217478656102842691034, 0.06962858323541036616776,
			0.07639038659877661642636, 0.08239299176158926390382,
			0.08757674060847787612620, 0.09189011389364147821536,
			0.09529024291231951280720, 0.09774333538632872509347,
			0.09922501122667230787488, 0.09972054479342645142753,
			0.09922501122667230787488, 0.09774333538632872509347,
			0.09529024291231951280720, 0.09189011389364147821536,
			0.08757674060847787612620, 0.08239299176158926390382,
			0.07639038659877661642636, 0.06962858323541036616776,
			0.06217478656102842691034, 0.05410308242491685371167,
			0.04549370752720110290232, 0.03643227391238546402439,
			0.02700901918497942180061, 0.01731862079031058246316,
			0.007470831579248775858697,
		},
	},
	32: {
		x: []float64{
			-0.9972638618494815635450, -0.9856115115452683354002,
			-0.9647622555875064307738, -0.9349060759377396891709,
			-0.8963211557660521239653, -0.8493676137325699701337,
			-0.7944837959679424069631, -0.7321821187402896803874,
			-0.6630442669302152009751, -0.5877157572407623290407,
			-0.5068999089322293900237, -0.4213512761306353453641,
			-0.3318686022821276497799, -0.2392873622521370745446,
			-0.1444719615827964934852, -0.04830766568773831623481,
			0.04830766568773831623481, 0.1444719615827964934852,
			0.2392873622521370745446, 0.3318686022821276497799,
			0.4213512761306353453641, 0.5068999089322293900237,
			0.5877157572407623290407, 0.6630442669302152009751,
			0.7321821187402896803874, 0.7944837959679424069631,
			0.8493676137325699701337, 0.8963211557660521239653,
			0.9349060759377396891709, 0.9647622555875064307738,
			0.9856115115452683354002, 0.9972638618494815635450,
		},
		w: []float64{
			0.007018610009470096600407, 0.01627439473090567060517,
			0.02539206530926205945575, 0.03427386291302143310269,
			0.04283589802222668065688, 0.05099805926237617619616,
			0.05868409347853554714528, 0.06582222277636184683765,
			0.07234579410884850622540, 0.07819389578707030647174,
			0.08331192422694675522220, 0.08765209300440381114277,
			0.09117387869576388471287, 0.09384439908080456563918,
			0.09563872007927485941908, 0.09654008851472780056676,
			0.09654008851472780056676, 0.09563872007927485941908,
			0.09384439908080456563918, 0.09117387869576388471287,
			0.08765209300440381114277, 0.08331192422694675522220,
			0.07819389578707030647174, 0.07234579410884850622540,
			0.06582222277636184683765, 0.05868409347853554714528,
			0.05099805926237617619616, 0.04283589802222668065688,
			0.03427386291302143310269, 0.02539206530926205945575,
			0.01627439473090567060517, 0.007018610009470096600407,
		},
	},
	33: {
		x: []float64{
			-0.9974246942464552172662, -0.9864557262306424881104,
			-0.9668229096899927689284, -0.9386943726111683503558,
			-0.9023167677434335830405, -0.8580096526765040646431,
			-0.8061623562741665897962, -0.7472304964495621578591,
			-0.6817319599697427862682, -0.6102423458363790273073,
			-0.5333899047863476435489, -0.4518500172724506957260,
			-0.3663392577480733410702, -0.2776090971524970294032,
			-0.1864392988279915723358, -0.09363106585473338567074,
			0.0, 0.09363106585473338567074,
			0.1864392988279915723358, 0.2776090971524970294032,
			0.3663392577480733410702, 0.4518500172724506957260,
			0.5333899047863476435489, 0.6102423458363790273073,
			0.6817319599697427862682, 0.7472304964495621578591,
			0.8061623562741665897962, 0.8580096526765040646431,
			0.9023167677434335830405, 0.9386943726111683503558,
			0.9668229096899927689284, 0.9864557262306424881104,
			0.9974246942464552172662,
		},
		w: []float64{
			0.006606227847587378058649, 0.01532170151293467612795,
			0.02391554810174948035053, 0.03230035863232895328156,
			0.04040154133166959156341, 0.04814774281871169567015,
			0.05547084663166356128494, 0.06230648253031748003163,
			0.06859457281865671280596, 0.07427985484395414934247,
			0.07931236479488673836391, 0.08364787606703870761393,
			0.08724828761884433760728, 0.09008195866063857723974,
			0.09212398664331684621324, 0.09335642606559611616100,
			0.09376844616020999656730, 0.09335642606559611616100,
			0.09212398664331684621324, 0.09008195866063857723974,
			0.08724828761884433760728, 0.08364787606703870761393,
			0.07931236479488673836391, 0.07427985484395414934247,
			0.06859457281865671280596, 0.06230648253031748003163,
			0.05547084663166356128494, 0.04814774281871169567015,
			0.04040154133166959156341, 0.03230035863232895328156,
			0.02391554810174948035053, 0.01532170151293467612795,
			0.006606227847587378058649,
		},
	},
	63: {
		x: []float64{
			-0.9992829840291237803789, -0.9962240127779701086022,
			-0.9907285468921894668109, -0.9828088105937272348625,
			-0.9724840346975700228020, -0.9597794497589419270704,
			-0.9447261340410098029664, -0.9273609206218432054470,
			-0.9077263027785315580370, -0.8858703285078534262903,
			-0.8618464823641237195396, -0.8357135543195028434718,
			-0.8075354957734567600515, -0.7773812629903723355633,
			-0.7453246483178474178293, -0.7114440995848458078514,
			-0.6758225281149860901311, -0.6385471058213653850003,
			-0.5997090518776252357390, -0.5594034094862850132677,
			-0.5177288132900332481245, -0.4747872479948043999222,
			-0.4306837987951116006621, -0.3855263942122478924776,
			-0.3394255419745844024688, -0.2924940585862514400362,
			-0.2448467932459533627484, -0.1966003467915066845576,
			-0.1478727863578719685698, -0.09878335644694527952970,
			-0.04945218711615962723423, 0.0,
			0.04945218711615962723423, 0.09878335644694527952970,
			0.1478727863578719685698, 0.1966003467915066845576,
			0.2448467932459533627484, 0.2924940585862514400362,
			0.3394255419745844024688, 0.3855263942122478924776,
			0.4306837987951116006621, 0.4747872479948043999222,
			0.5177288132900332481245, 0.5594034094862850132677,
			0.5997090518776252357390, 0.6385471058213653850003,
			0.6758225281149860901311, 0.7114440995848458078514,
			0.7453246483178474178293, 0.7773812629903723355633,
			0.8075354957734567600515, 0.8357135543195028434718,
			0.8618464823641237195396, 0.8858703285078534262903,
			0.9077263027785315580370, 0.9273609206218432054470,
			0.9447261340410098029664, 0.9597794497589419270704,
			0.9724840346975700228020, 0.9828088105937272348625,
			0.9907285468921894668109, 0.9962240127779701086022,
			0.9992829840291237803789,
		},
		w: []float64{
			0.001839874595577084117092, 0.004278508346863761866078,
			0.006710291765960136251907, 0.009125968676326656354059,
			0.01151937607688004175075, 0.01388461261611561082487,
			0.01621587841033833888228, 0.01850746446016127040926,
			0.02075376125803909077534, 0.02294927100488993314894,
			0.02508862055334498661863, 0.02716657435909793322519,
			0.02917804720828052694555, 0.03111811662221981750822,
			0.03298203488377934176568, 0.03476524064535587769718,
			0.03646337008545728963045, 0.03807226758434955676364,
			0.03958799589154409398481, 0.04100684575966639863511,
			0.04232534502081582298251, 0.04354026708302759079896,
			0.04464863882594139537033, 0.04564774787629260868589,
			0.04653514924538369651040, 0.04730867131226891908060,
			0.04796642113799513141105, 0.04850678909788384786409,
			0.04892845282051198994471, 0.04923038042374756078504,
			0.04941183303991817896704, 0.04947236662393102088867,
			0.04941183303991817896704, 0.04923038042374756078504,
			0.04892845282051198994471, 0.04850678909788384786409,
			0.04796642113799513141105, 0.04730867131226891908060,
			0.04653514924538369651040, 0.04564774787629260868589,
			0.04464863882594139537033, 0.04354026708302759079896,
			0.04232534502081582298251, 0.04100684575966639863511,
			0.03958799589154409398481, 0.03807226758434955676364,
			0.03646337008545728963045, 0.03476524064535587769718,
			0.03298203488377934176568, 0.03111811662221981750822,
			0.02917804720828052694555, 0.02716657435909793322519,
			0.02508862055334498661863, 0.02294927100488993314894,
			0.02075376125803909077534, 0.01850746446016127040926,
			0.01621587841033833888228, 0.01388461261611561082487,
			0.01151937607688004175075, 0.009125968676326656354059,
			0.006710291765960136251907, 0.004278508346863761866078,
			0.001839874595577084117092,
		},
	},
	64: {
		x: []float64{
			-0.9993050417357721394569, -0.9963401167719552793469,
			-0.9910133714767443207394, -0.9833362538846259569313,
			-0.9733268277899109637419, -0.9610087996520537189186,
			-0.9464113748584028160625, -0.9295691721319395758215,
			-0.9105221370785028057564, -0.8893154459951141058534,
			-0.8659993981540928197608, -0.8406292962525803627517,
			-0.8132653151227975597419, -0.7839723589433414076102,
			-0.7528199072605318966119, -0.7198818501716108268489,
			-0.6852363130542332425636, -0.6489654712546573398578,
			-0.6111553551723932502489, -0.5718956462026340342839,
			-0.5312794640198945456580, -0.4894031457070529574785,
			-0.4463660172534640879849, -0.4022701579639916036958,
			-0.3572201583376681159504, -0.3113228719902109561575,
			-0.2646871622087674163740, -0.2174236437400070841496,
			-0.1696444204239928180373, -0.1214628192961205544704,
			-0.07299312178779903944954, -0.02435029266342443250896,
			0.02435029266342443250896, 0.07299312178779903944954,
			0.1214628192961205544704, 0.1696444204239928180373,
			0.2174236437400070841496, 0.2646871622087674163740,
			0.3113228719902109561575, 0.3572201583376681159504,
			0.4022701579639916036958, 0.4463660172534640879849,
			0.4894031457070529574785, 0.5312794640198945456580,
			0.5718956462026340342839, 0.6111553551723932502489,
			0.6489654712546573398578, 0.6852363130542332425636,
			0.7198818501716108268489, 0.7528199072605318966119,
			0.7839723589433414076102, 0.8132653151227975597419,
			0.8406292962525803627517, 0.8659993981540928197608,
			0.8893154459951141058534, 0.9105221370785028057564,
			0.9295691721319395758215, 0.9464113748584028160625,
			0.9610087996520537189186, 0.9733268277899109637419,
			0.9833362538846259569313, 0.9910133714767443207394,
			0.9963401167719552793469, 0.9993050417357721394569,
		},
		w: []float64{
			0.001783280721696432947296, 0.004147033260562467635288,
			0.006504457968978362856117, 0.008846759826363947723031,
			0.01116813946013112881859, 0.01346304789671864259806,
			0.01572603047602471932197, 0.01795171577569734308505,
			0.02013482315353020937234, 0.02227017380838325415930,
			0.02435270256871087333818, 0.02637746971505465867169,
			0.02833967261425948322751, 0.03023465707240247886797,
			0.03205792835485155358547, 0.03380516183714160939157,
			0.03547221325688238381069, 0.03705512854024004604042,
			0.03855015317861562912896, 0.03995374113272034138666,
			0.04126256324262352861016, 0.04247351512365358900734,
			0.04358372452932345337683, 0.04459055816375656306013,
			0.04549162792741814447977, 0.04628479658131441729595,
			0.04696818281621001732533, 0.04754016571483030866228,
			0.04799938859645830772813, 0.04834476223480295716977,
			0.04857546744150342693480, 0.04869095700913972038337,
			0.04869095700913972038337, 0.04857546744150342693480,
			0.04834476223480295716977, 0.04799938859645830772813,
			0.04754016571483030866228, 0.04696818281621001732533,
			0.04628479658131441729595, 0.04549162792741814447977,
			0.04459055816375656306013, 0.04358372452932345337683,
			0.04247351512365358900734, 0.04126256324262352861016,
			0.03995374113272034138666, 0.03855015317861562912896,
			0.03705512854024004604042, 0.03547221325688238381069,
			0.03380516183714160939157, 0.03205792835485155358547,
			0.03023465707240247886797, 0.02833967261425948322751,
			0.02637746971505465867169, 0.02435270256871087333818,
			0.02227017380838325415930, 0.02013482315353020937234,
			0.01795171577569734308505, 0.01572603047602471932197,
			0.01346304789671864259806, 0.01116813946013112881859,
			0.008846759826363947723031, 0.006504457968978362856117,
			0.004147033260562467635288, 0.001783280721696432947296,
		},
	},
	65: {
		x: []float64{
			-0.9993260970754128772657, -0.9964509480618491630558,
			-0.9912852761768016687218, -0.9838398121870349413776,
			-0.9741315398335511690750, -0.9621827547180552377120,
			-0.9480209281684075063738, -0.9316786282287493379657,
			-0.9131934405428462617365, -0.8926078805047389314233,
			-0.8699692949264070361941, -0.8453297528999302839425,
			-0.8187459259226514534339, -0.7902789574921218430474,
			-0.7599943224419997868740, -0.7279616763294246790120,
			-0.6942546952139916335526, -0.6589509061936251330409,
			-0.6221315090854002415826, -0.5838811896604873133272,
			-0.5442879248622271385456, -0.5034427804550068823410,
			-0.4614397015691450576978, -0.4183752966234090092642,
			-0.3743486151220660120088, -0.3294609198374864076453,
			-0.2838154539022487306177, -0.2375172033464168065707,
			-0.1906726556261427697749, -0.1433895546989751711312,
			-0.09577665320919750565222, -0.04794346235317185752253,
			0.0, 0.04794346235317185752253,
			0.09577665320919750565222, 0.1433895546989751711312,
			0.1906726556261427697749, 0.2375172033464168065707,
			0.2838154539022487306177, 0.3294609198374864076453,
			0.3743486151220660120088, 0.4183752966234090092642,
			0.4614397015691450576978, 0.5034427804550068823410,
			0.5442879248622271385456, 0.5838811896604873133272,
			0.6221315090854002415826, 0.6589509061936251330409,
			0.6942546952139916335526, 0.7279616763294246790120,
			0.7599943224419997868740, 0.7902789574921218430474,
			0.8187459259226514534339, 0.8453297528999302839425,
			0.8699692949264070361941, 0.8926078805047389314233,
			0.9131934405428462617365, 0.9316786282287493379657,
			0.9480209281684075063738, 0.9621827547180552377120,
			0.9741315398335511690750, 0.9838398121870349413776,
			0.9912852761768016687218, 0.9964509480618491630558,
			0.9993260970754128772657,
		},
		w: []float64{
			0.001729258251300250898340, 0.004021524172003736347079,
			0.006307942578971754550189, 0.008580148266881459893636,
			0.01083267878959796862151, 0.01306031163999484633617,
			0.01525791214644831034927, 0.01742042199767024849537,
			0.01954286583675006282684, 0.02162036128493406284165,
			0.02364812969128723669878, 0.02562150693803775821408,
			0.02753595408845034394250, 0.02938706778931066806264,
			0.03117059038018914246443, 0.03288241967636857498405,
			0.03451861839854905862522, 0.03607542322556527393217,
			0.03754925344825770980977, 0.03893671920405119761667,
			0.04023462927300553381545, 0.04143999841724029302269,
			0.04255005424675580271922, 0.04356224359580048653228,
			0.04447423839508297442732, 0.04528394102630023065713,
			0.04598948914665169696389, 0.04658925997223349830226,
			0.04708187401045452224601, 0.04746619823288550315264,
			0.04774134868124062155904, 0.04790669250049586203135,
			0.04796184939446661812071, 0.04790669250049586203135,
			0.04774134868124062155904, 0.04746619823288550315264,
			0.04708187401045452224601, 0.04658925997223349830226,
			0.04598948914665169696389, 0.04528394102630023065713,
			0.04447423839508297442732, 0.04356224359580048653228,
			0.04255005424675580271922, 0.04143999841724029302269,
			0.04023462927300553381545, 0.03893671920405119761667,
			0.03754925344825770980977, 0.03607542322556527393217,
			0.03451861839854905862522, 0.03288241967636857498405,
			0.03117059038018914246443, 0.02938706778931066806264,
			0.02753595408845034394250, 0.02562150693803775821408,
			0.02364812969128723669878, 0.02162036128493406284165,
			0.01954286583675006282684, 0.01742042199767024849537,
			0.01525791214644831034927, 0.01306031163999484633617,
			0.01083267878959796862151, 0.008580148266881459893636,
			0.006307942578971754550189, 0.004021524172003736347079,
			0.001729258251300250898340,
		},
	},
	127: {
		x: []float64{
			-0.9998221304153061462674, -0.9990629343553118951383,
			-0.9976975661898046210744, -0.9957265513520272266354,
			-0.9931510492545171473611, -0.9899726145914841576078,
			-0.9861931740169316667104, -0.9818150208038141100335,
			-0.9768408123430703268174, -0.9712735681615291922889,
			-0.9651166679452921210908, -0.9583738494252387711491,
			-0.9510492060778803105479, -0.9431471846248148273454,
			-0.9346725823247379685736, -0.9256305440562338491275,
			-0.9160265591914658093131, -0.9058664582618213828025,
			-0.8951564094170837089690, -0.8839029146800265699453,
			-0.8721128059985607114196, -0.8597932410977408098120,
			-0.8469516991340975984533, -0.8335959761548995143796,
			-0.8197341803650786741551, -0.8053747272046802146666,
			-0.7905263342398137999454, -0.7751980158702023824450,
			-0.7593990778565366715567, -0.7431391116709545129206,
			-0.7264279886740726855357, -0.7092758541221045609994,
			-0.6916931210077006701564, -0.6736904637382504853467,
			-0.6552788116554826302768, -0.6364693424002972413476,
			-0.6172734751268582838576, -0.5977028635700652293844,
			-0.5777693889706125800033, -0.5574851528619322329219,
			-0.5368624697233975674582, -0.5159138595042493572773,
			-0.4946520400227821173949, -0.4730899192454052416451,
			-0.4512405874502662273319, -0.4291173092801933762625,
			-0.4067335156897825634087, -0.3841027957915169357791,
			-0.3612388886058697060709, -0.3381556747203985013760,
			-0.3148671678628949814860, -0.2913875063937056207945,
			-0.2677309447223886208883, -0.2439118446539178579707,
			-0.2199446666696875424545, -0.1958439611486108515043,
			-0.1716243595336421650083, -0.1473005654490856693893,
			-0.1228873457740829717260, -0.09839952167769897075109,
			-0.07385195962104854527344, -0.04925956233192663031538,
			-0.02463725975742094461490, 0.0,
			0.02463725975742094461490, 0.04925956233192663031538,
			0.07385195962104854527344, 0.09839952167769897075109,
			0.1228873457740829717260, 0.1473005654490856693893,
			0.1716243595336421650083, 0.1958439611486108515043,
			0.2199446666696875424545, 0.2439118446539178579707,
			0.2677309447223886208883, 0.2913875063937056207945,
			0.3148671678628949814860, 0.3381556747203985013760,
			0.3612388886058697060709, 0.3841027957915169357791,
			0.4067335156897825634087, 0.4291173092801933762625,
			0.4512405874502662273319, 0.4730899192454052416451,
			0.4946520400227821173949, 0.5159138595042493572773,
			0.5368624697233975674582, 0.5574851528619322329219,
			0.5777693889706125800033, 0.5977028635700652293844,
			0.6172734751268582838576, 0.6364693424002972413476,
			0.6552788116554826302768, 0.6736904637382504853467,
			0.6916931210077006701564, 0.7092758541221045609994,
			0.7264279886740726855357, 0.7431391116709545129206,
			0.7593990778565366715567, 0.7751980158702023824450,
			0.7905263342398137999454, 0.8053747272046802146666,
			0.8197341803650786741551, 0.8335959761548995143796,
			0.8469516991340975984533, 0.8597932410977408098120,
			0.8721128059985607114196, 0.8839029146800265699453,
			0.8951564094170837089690, 0.9058664582618213828025,
			0.9160265591914658093131, 0.9256305440562338491275,
			0.9346725823247379685736, 0.9431471846248148273454,
			0.9510492060778803105479, 0.9583738494252387711491,
			0.9651166679452921210908, 0.9712735681615291922889,
			0.9768408123430703268174, 0.9818150208038141100335,
			0.9861931740169316667104, 0.9899726145914841576078,
			0.9931510492545171473611, 0.9957265513520272266354,
			0.9976975661898046210744, 0.9990629343553118951383,
			0.9998221304153061462674,
		},
		w: []float64{
			0.0004564572610958666279194, 0.001062276686953848695965,
			0.001668348812517193676103, 0.002273486070749254780281,
			0.002877258765628900408288, 0.003479289381005146590891,
			0.004079209517825460532711, 0.004676653977777903477264,
			0.005271259656563440089130, 0.005862665390352390103365,
			0.006450512048689917184544, 0.007034442703668160875569,
			0.007614102825652685935639, 0.008189140488741573081724,
			0.008759206579540314577332, 0.009323955006530971478754,
			0.009883042908755491471665, 0.01043613086314100522567,
			0.01098288309006897578880, 0.01152296765692108715481,
			0.01205605667940084818353, 0.01258182652046501310151,
			0.01309995798671862742617, 0.01361013652213924990603,
			0.01411205239900339577404, 0.01460540090589341835174,
			0.01508988253266692299264, 0.01556520315227395509853,
			0.01603107419930994180225, 0.01648721284519487939935,
			0.01693334216987165454588, 0.01736919132991873192216,
			0.01779449572297477423103, 0.01820899714837510646872,
			0.01861244396390231042944, 0.01900459123855564661115,
			0.01938520090124645462811, 0.01975404188532918308182,
			0.02011089026888024722564, 0.02045552941063950827950,
			0.02078775008153181181265, 0.02110735059168871364352,
			0.02141413691289325929545, 0.02170792279637346605230,
			0.02198852988587298375648, 0.02225578782593028023563,
			0.02250953436530060808569, 0.02274961545545795985224,
			0.02297588534411720675438, 0.02318820666371964024992,
			0.02338645051482819417072, 0.02357049654438171605003,
			0.02374023301876077777771, 0.02389555689162066598386,
			0.02403637386645036967513, 0.02416259845381958471652,
			0.02427415402327897983320, 0.02437097284988221495281,
			0.02445299615530146795614, 0.02452017414351150827518,
			0.02457246603102065328635, 0.02460984007163025409255,
			0.02463227357570767906603, 0.02463975292396109441958,
			0.02463227357570767906603, 0.02460984007163025409255,
			0.02457246603102065328635, 0.02452017414351150827518,
			0.02445299615530146795614, 0.02437097284988221495281,
			0.02427415402327897983320, 0.02416259845381958471652,
			0.02403637386645036967513, 0.02389555689162066598386,
			0.02374023301876077777771, 0.02357049654438171605003,
			0.02338645051482819417072, 0.02318820666371964024992,
			0.02297588534411720675438, 0.02274961545545795985224,
			0.02250953436530060808569, 0.02225578782593028023563,
			0.02198852988587298375648, 0.02170792279637346605230,
			0.02141413691289325929545, 0.02110735059168871364352,
			0.02078775008153181181265, 0.02045552941063950827950,
			0.02011089026888024722564, 0.01975404188532918308182,
			0.01938520090124645462811, 0.01900459123855564661115,
			0.01861244396390231042944, 0.01820899714837510646872,
			0.01779449572297477423103, 0.01736919132991873192216,
			0.01693334216987165454588, 0.01648721284519487939935,
			0.01603107419930994180225, 0.01556520315227395509853,
			0.01508988253266692299264, 0.01460540090589341835174,
			0.01411205239900339577404, 0.01361013652213924990603,
			0.01309995798671862742617, 0.01258182652046501310151,
			0.01205605667940084818353, 0.01152296765692108715481,
			0.01098288309006897578880, 0.01043613086314100522567,
			0.009883042908755491471665, 0.009323955006530971478754,
			0.008759206579540314577332, 0.008189140488741573081724,
			0.007614102825652685935639, 0.007034442703668160875569,
			0.006450512048689917184544, 0.005862665390352390103365,
			0.005271259656563440089130, 0.004676653977777903477264,
			0.004079209517825460532711, 0.003479289381005146590891,
			0.002877258765628900408288, 0.002273486070749254780281,
			0.001668348812517193676103, 0.001062276686953848695965,
			0.0004564572610958666279194,
		},
	},
	128: {
		x: []float64{
			-0.9998248879471319144736, -0.9990774599773758950120,
			-0.9977332486255140198822, -0.9957927585349811868642,
			-0.9932571129002129353034, -0.9901278184917343833379,
			-0.9864067427245862088712, -0.9820961084357185360248,
			-0.9771984914639073871654, -0.9717168187471365809043,
			-0.9656543664319652686458, -0.9590147578536999280989,
			-0.9518019613412643862178, -0.9440202878302201821211,
			-0.9356743882779163757831, -0.9267692508789478433346,
			-0.9173101980809605370365, -0.9073028834017568139215,
			-0.8967532880491581843864, -0.8856677173453972174083,
			-0.8740527969580317986954, -0.8619154689395484605906,
			-0.8492629875779689691636, -0.8361029150609068471169,
			-0.8224431169556438424646, -0.8082917575079136601196,
			-0.7936572947621932902433, -0.7785484755064119668505,
			-0.7629743300440947227798, -0.7469441667970619811699,
			-0.7304675667419088064717, -0.7135543776835874133439,
			-0.6962147083695143323851, -0.6784589224477192593678,
			-0.6602976322726460521059, -0.6417416925623075571535,
			-0.6228021939105849107615, -0.6034904561585486242036,
			-0.5838180216287630895500, -0.5637966482266180839144,
			-0.5434383024128103634442, -0.5227551520511754784539,
			-0.5017595591361444642896, -0.4804640724041720258583,
			-0.4588814198335521954491, -0.4370245010371041629370,
			-0.4149063795522750154923, -0.3925402750332674427356,
			-0.3699395553498590266166, -0.3471177285976355084262,
			-0.3240884350244133751833, -0.3008654388776772026672,
			-0.2774626201779044028062, -0.2538939664226943208556,
			-0.2301735642266599864110, -0.2063155909020792171541,
			-0.1823343059853371824104, -0.1582440427142249339975,
			-0.1340591994611877851176, -0.1097942311276437466730,
			-0.08546364050451549863650, -0.06108196960413956810379,
			-0.03666379096873349333022, -0.01222369896061576419805,
			0.01222369896061576419805, 0.03666379096873349333022,
			0.06108196960413956810379, 0.08546364050451549863650,
			0.1097942311276437466730, 0.1340591994611877851176,
			0.1582440427142249339975, 0.1823343059853371824104,
			0.2063155909020792171541, 0.2301735642266599864110,
			0.2538939664226943208556, 0.2774626201779044028062,
			0.3008654388776772026672, 0.3240884350244133751833,
			0.3471177285976355084262, 0.3699395553498590266166,
			0.3925402750332674427356, 0.4149063795522750154923,
			0.4370245010371041629370, 0.4588814198335521954491,
			0.4804640724041720258583, 0.5017595591361444642896,
			0.5227551520511754784539, 0.5434383024128103634442,
			0.5637966482266180839144, 0.5838180216287630895500,
			0.6034904561585486242036, 0.6228021939105849107615,
			0.6417416925623075571535, 0.6602976322726460521059,
			0.6784589224477192593678, 0.6962147083695143323851,
			0.7135543776835874133439, 0.7304675667419088064717,
			0.7469441667970619811699, 0.7629743300440947227798,
			0.7785484755064119668505, 0.7936572947621932902433,
			0.8082917575079136601196, 0.8224431169556438424646,
			0.8361029150609068471169, 0.8492629875779689691636,
			0.8619154689395484605906, 0.8740527969580317986954,
			0.8856677173453972174083, 0.8967532880491581843864,
			0.9073028834017568139215, 0.9173101980809605370365,
			0.9267692508789478433346, 0.9356743882779163757831,
			0.9440202878302201821211, 0.9518019613412643862178,
			0.9590147578536999280989, 0.9656543664319652686458,
			0.9717168187471365809043, 0.9771984914639073871654,
			0.9820961084357185360248, 0.9864067427245862088712,
			0.9901278184917343833379, 0.9932571129002129353034,
			0.9957927585349811868642, 0.9977332486255140198822,
			0.9990774599773758950120, 0.9998248879471319144736,
		},
		w: []float64{
			0.0004493809602920903763943, 0.001045812679340348779313,
			0.001642503018669029538791, 0.002238288430962618743622,
			0.002832751471457991095286, 0.003425526040910215774338,
			0.004016254983738642313194, 0.004604584256702955118291,
			0.005190161832676330205071, 0.005772637542865698589335,
			0.006351663161707188787214, 0.006926892566898813563427,
			0.007497981925634728687672, 0.008064589890486057972929,
			0.008626377798616749704979, 0.009183009871660874334479,
			0.009734153415006805863548, 0.01027947901583215713322,
			0.01081866073950307624766, 0.01135137632408041669328,
			0.01187730737274027957589, 0.01239613954395092296882,
			0.01290756273926734722044, 0.01341127128861633231449,
			0.01390696413295198524429, 0.01439434500416684617682,
			0.01487312260214731425239, 0.01534301076886514408599,
			0.01580372865939934685897, 0.01625500090978518705166,
			0.01669655780158920458909, 0.01712813542311137683068,
			0.01754947582711770464871, 0.01796032718500868594020,
			0.01836044393733134322129, 0.01874958694054470865092,
			0.01912752360995094548652, 0.01949402805870660282302,
			0.01984888123283086221994, 0.02019187104213004118067,
			0.02052279248696006943228, 0.02084144778075114911358,
			0.02114764646822134853702, 0.02144120553920846013711,
			0.02172194953805207537526, 0.02198971066846049143412,
			0.02224432889379976510463, 0.02248565203274496687182,
			0.02271353585023646130971, 0.02292784414368684692041,
			0.02312844882438702787930, 0.02331522999406276012242,
			0.02348807601653591315303, 0.02364688358444761514365,
			0.02379155778100340063878, 0.02392201213670345567245,
			0.02403816868102405263759, 0.02413995798901928499772,
			0.02422731922281524812009, 0.02430020016797186532344,
			0.02435855726469062585327, 0.02440235563384958209330,
			0.02443156909785004505485, 0.02444618019626251821133,
			0.02444618019626251821133, 0.02443156909785004505485,
			0.02440235563384958209330, 0.02435855726469062585327,
			0.02430020016797186532344, 0.02422731922281524812009,
			0.02413995798901928499772, 0.02403816868102405263759,
			0.02392201213670345567245, 0.02379155778100340063878,
			0.02364688358444761514365, 0.02348807601653591315303,
			0.02331522999406276012242, 0.02312844882438702787930,
			0.02292784414368684692041, 0.02271353585023646130971,
			0.02248565203274496687182, 0.02224432889379976510463,
			0.02198971066846049143412, 0.02172194953805207537526,
			0.02144120553920846013711, 0.02114764646822134853702,
			0.02084144778075114911358, 0.02052279248696006943228,
			0.02019187104213004118067, 0.01984888123283086221994,
			0.01949402805870660282302, 0.01912752360995094548652,
			0.01874958694054470865092, 0.01836044393733134322129,
			0.01796032718500868594020, 0.01754947582711770464871,
			0.01712813542311137683068, 0.01669655780158920458909,
			0.01625500090978518705166, 0.01580372865939934685897,
			0.01534301076886514408599, 0.01487312260214731425239,
			0.01439434500416684617682, 0.01390696413295198524429,
			0.01341127128861633231449, 0.01290756273926734722044,
			0.01239613954395092296882, 0.01187730737274027957589,
			0.01135137632408041669328, 0.01081866073950307624766,
			0.01027947901583215713322, 0.009734153415006805863548,
			0.009183009871660874334479, 0.008626377798616749704979,
			0.008064589890486057972929, 0.007497981925634728687672,
			0.006926892566898813563427, 0.006351663161707188787214,
			0.005772637542865698589335, 0.005190161832676330205071,
			0.004604584256702955118291, 0.004016254983738642313194,
			0.003425526040910215774338, 0.002832751471457991095286,
			0.002238288430962618743622, 0.001642503018669029538791,
			0.001045812679340348779313, 0.0004493809602920903763943,
		},
	},
	129: {
		x: []float64{
			-0.9998275818477487191077, -0.9990916504696409986514,
			-0.9977681080525852721429, -0.9958574393142831982149,
			-0.9933607326210712814854, -0.9902794486488178389208,
			-0.9866153978313475022006, -0.9823707352517413115507,
			-0.9775479582993672474448, -0.9721499048427034297274,
			-0.9661797514202097197779, -0.9596410113101918904168,
			-0.9525375324342090471028, -0.9448734950776734726785,
			-0.9366534094216514605285, -0.9278821128840036204317,
			-0.9185647672698286252225, -0.9087068557320696331246,
			-0.8983141795436338850436, -0.8873928546826803665035,
			-0.8759493082329433892035, -0.8639902746011257878940,
			-0.8515227915535356930244, -0.8385541960742664442975,
			-0.8250921200473358809210, -0.8111444857653120742088,
			-0.7967195012670592680340, -0.7818256555073413245387,
			-0.7664717133611208816718, -0.7506667104654910227632,
			-0.7344199479022727047792, -0.7177409867244055767721,
			-0.7006396423293521790045, -0.6831259786828258512462,
			-0.6652103023962409818802, -0.6469031566613704719753,
			-0.6282153150457794374887, -0.6091577751526861909563,
			-0.5897417521489813916768, -0.5699786721652138894754,
			-0.5498801655714271702189, -0.5294580601328034000099,
			-0.5087243740491428186199, -0.4876913088822746111853,
			-0.4663712423755613514332, -0.4447767211697226217818,
			-0.4229204534192644388475, -0.4008153013138596117693,
			-0.3784742735090801012801, -0.3559105174709357969673,
			-0.3331373117387248575050, -0.3101680581107488341147,
			-0.2870162737574911929569, -0.2636955832669005409667,
			-0.2402197106264598167721, -0.2166024711467599103221,
			-0.1928577633313305998664, -0.1689995606975133227390,
			-0.1450419035531891084328, -0.1209988907342009817691,
			-0.09688467130733327530869, -0.07271343624373055991182,
			-0.04849941006765629861918, -0.02425684248550584157500,
			0.0, 0.02425684248550584157500,
			0.04849941006765629861918, 0.07271343624373055991182,
			0.09688467130733327530869, 0.1209988907342009817691,
			0.1450419035531891084328, 0.1689995606975133227390,
			0.1928577633313305998664, 0.2166024711467599103221,
			0.2402197106264598167721, 0.2636955832669005409667,
			0.2870162737574911929569, 0.3101680581107488341147,
			0.3331373117387248575050, 0.3559105174709357969673,
			0.3784742735090801012801, 0.4008153013138596117693,
			0.4229204534192644388475, 0.4447767211697226217818,
			0.4663712423755613514332, 0.4876913088822746111853,
			0.5087243740491428186199, 0.5294580601328034000099,
			0.5498801655714271702189, 0.5699786721652138894754,
			0.5897417521489813916768, 0.6091577751526861909563,
			0.6282153150457794374887, 0.6469031566613704719753,
			0.6652103023962409818802, 0.6831259786828258512462,
			0.7006396423293521790045, 0.7177409867244055767721,
			0.7344199479022727047792, 0.7506667104654910227632,
			0.7664717133611208816718, 0.7818256555073413245387,
			0.7967195012670592680340, 0.8111444857653120742088,
			0.8250921200473358809210, 0.8385541960742664442975,
			0.8515227915535356930244, 0.8639902746011257878940,
			0.8759493082329433892035, 0.8873928546826803665035,
			0.8983141795436338850436, 0.9087068557320696331246,
			0.9185647672698286252225, 0.9278821128840036204317,
			0.9366534094216514605285, 0.9448734950776734726785,
			0.9525375324342090471028, 0.9596410113101918904168,
			0.9661797514202097197779, 0.9721499048427034297274,
			0.9775479582993672474448, 0.9823707352517413115507,
			0.9866153978313475022006, 0.9902794486488178389208,
			0.9933607326210712814854, 0.9958574393142831982149,
			0.9977681080525852721429, 0.9990916504696409986514,
			0.9998275818477487191077,
		},
		w: []float64{
			0.0004424679418293929692367, 0.001029728446196223944633,
			0.001617253055678553468241, 0.002203901518096693707579,
			0.002789268187779755494094, 0.003372997950624624611776,
			0.003954744468211356217239, 0.004534164429852543451323,
			0.005110916466924626728976, 0.005684660991246904578802,
			0.006255060272446140888935, 0.006821778589351912107050,
			0.007384482407245401444717, 0.007942840564666802904111,
			0.008496524463572327973054, 0.009045208260213731640422,
			0.009588569055510419078730, 0.01012628708427335480932,
			0.01065804590290551853042, 0.01118353257533050497354,
			0.01170243785696477818575, 0.01221445637658297941622,
			0.01271928681594462346510, 0.01321663208706172423148,
			0.01370619950699397124406, 0.01418770097006290041932,
			0.01466085311738006097104, 0.01512537750358702469040,
			0.01558100076070752341588, 0.01602745475901421443640,
			0.01646447676481466746717, 0.01689180959506320417753,
			0.01730920176870724073129, 0.01771640765467880926970,
			0.01811318761644398050400, 0.01849930815302498572779,
			0.01887454203641194818162, 0.01923866844528328408520,
			0.01959147309495602458028, 0.01993274836348954208971,
			0.02026229341386843831710, 0.02057991431219266594819,
			0.02088542414180531140999, 0.02117864311329086091288,
			0.02145939867027920538998, 0.02172752559099311068731,
			0.02198286608547938617955, 0.02222526988846652655474,
			0.02245459434779417643207, 0.02267070450836237431309,
			0.02287347319155116963859, 0.02306278107006387292467,
			0.02323851673814989254449, 0.02340057677716583114671,
			0.02354886581643625837727, 0.02368329658937834289734,
			0.02380378998485731405133, 0.02391027509374253030237,
			0.02400268925063675607555, 0.02408097807075408927296,
			0.02414509548192483678384, 0.02419500375170850312982,
			0.02423067350959893627551, 0.02425208376430856290650,
			0.02425922191612154143203, 0.02425208376430856290650,
			0.02423067350959893627551, 0.02419500375170850312982,
			0.02414509548192483678384, 0.02408097807075408927296,
			0.02400268925063675607555, 0.02391027509374253030237,
			0.02380378998485731405133, 0.02368329658937834289734,
			0.02354886581643625837727, 0.02340057677716583114671,
			0.02323851673814989254449, 0.02306278107006387292467,
			0.02287347319155116963859, 0.02267070450836237431309,
			0.02245459434779417643207, 0.02222526988846652655474,
			0.02198286608547938617955, 0.02172752559099311068731,
			0.02145939867027920538998, 0.02117864311329086091288,
			0.02088542414180531140999, 0.02057991431219266594819,
			0.02026229341386843831710, 0.01993274836348954208971,
			0.01959147309495602458028, 0.01923866844528328408520,
			0.01887454203641194818162, 0.01849930815302498572779,
			0.01811318761644398050400, 0.01771640765467880926970,
			0.01730920176870724073129, 0.01689180959506320417753,
			0.01646447676481466746717, 0.01602745475901421443640,
			0.01558100076070752341588, 0.01512537750358702469040,
			0.01466085311738006097104, 0.01418770097006290041932,
			0.01370619950699397124406, 0.01321663208706172423148,
			0.01271928681594462346510, 0.01221445637658297941622,
			0.01170243785696477818575, 0.01118353257533050497354,
			0.01065804590290551853042, 0.01012628708427335480932,
			0.009588569055510419078730, 0.009045208260213731640422,
			0.008496524463572327973054, 0.007942840564666802904111,
			0.007384482407245401444717, 0.006821778589351912107050,
			0.006255060272446140888935, 0.005684660991246904578802,
			0.005110916466924626728976, 0.004534164429852543451323,
			0.003954744468211356217239, 0.003372997950624624611776,
			0.002789268187779755494094, 0.002203901518096693707579,
			0.001617253055678553468241, 0.001029728446196223944633,
			0.0004424679418293929692367,
		},
	},
}
