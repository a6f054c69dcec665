package quadrature

// pattersonTable holds the nested Gauss-Patterson rules on [-1,1]. Each rule
// contains every abscissa of the rule before it.
var pattersonTable = map[int]tabulated{
	1: {
		x: []float64{
			0.0,
		},
		w: []float64{
			2.0,
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
	7: {
		x: []float64{
			-0.9604912687080202834235, -0.7745966692414833770359,
			-0.4342437493468025580021, 0.0,
			0.4342437493468025580021, 0.7745966692414833770359,
			0.9604912687080202834235,
		},
		w: []float64{
			0.1046562260264672651938, 0.2684880898683334407286,
			0.4013974147759622229051, 0.4509165386584741423451,
			0.4013974147759622229051, 0.2684880898683334407286,
			0.1046562260264672651938,
		},
	},
	15: {
		x: []float64{
			-0.9938319632127550222085, -0.9604912687080202834235,
			-0.8884592328722569988904, -0.7745966692414833770359,
			-0.6211029467372264029407, -0.4342437493468025580021,
			-0.2233866864289668816282, 0.0,
			0.2233866864289668816282, 0.4342437493468025580021,
			0.6211029467372264029407, 0.7745966692414833770359,
			0.8884592328722569988904, 0.9604912687080202834235,
			0.9938319632127550222085,
		},
		w: []float64{
			0.01700171962994026033903, 0.05160328299707973969692,
			0.09292719531512453768589, 0.1344152552437842203600,
			0.1715119091363913807874, 0.2006285293769890210339,
			0.2191568584015874964037, 0.2255104997982066873864,
			0.2191568584015874964037, 0.2006285293769890210339,
			0.1715119091363913807874, 0.1344152552437842203600,
			0.09292719531512453768589, 0.05160328299707973969692,
			0.01700171962994026033903,
		},
	},
	31: {
		x: []float64{
			-0.9990981249676675976622, -0.9938319632127550222085,
			-0.9815311495537401068674, -0.9604912687080202834235,
			-0.9296548574297400566701, -0.8884592328722569988904,
			-0.8367259381688687355028, -0.7745966692414833770359,
			-0.7024962064915270786098, -0.6211029467372264029407,
			-0.5313197436443756239721, -0.4342437493468025580021,
			-0.3311353932579768330926, -0.2233866864289668816282,
			-0.1124889431331866257458, 0.0,
			0.1124889431331866257458, 0.2233866864289668816282,
			0.3311353932579768330926, 0.4342437493468025580021,
			0.5313197436443756239721, 0.6211029467372264029407,
			0.7024962064915270786098, 0.7745966692414833770359,
			0.8367259381688687355028, 0.8884592328722569988904,
			0.9296548574297400566701, 0.9604912687080202834235,
			0.9815311495537401068674, 0.9938319632127550222085,
			0.9990981249676675976622,
		},
		w: []float64{
			0.002544780791561874415403, 0.008434565739321106246315,
			0.01644604985438781093379, 0.02580759809617665356465,
			0.03595710330712932209678, 0.04646289326175798654140,
			0.05697950949412335741220, 0.06720775429599070354040,
			0.07687962049900353104271, 0.08575592004999035115419,
			0.09362710998126447361666, 0.1003142786117955787713,
			0.1056698935802348097438, 0.1095784210559246382367,
			0.1119568730209534568801, 0.1127552567207686916071,
			0.1119568730209534568801, 0.1095784210559246382367,
			0.1056698935802348097438, 0.1003142786117955787713,
			0.09362710998126447361666, 0.08575592004999035115419,
			0.07687962049900353104271, 0.06720775429599070354040,
			0.05697950949412335741220, 0.04646289326175798654140,
			0.03595710330712932209678, 0.02580759809617665356465,
			0.01644604985438781093379, 0.008434565739321106246315,
			0.002544780791561874415403,
		},
	},
	63: {
		x: []float64{
			-0.9998728881203576119380, -0.9990981249676675976622,
			-0.9972062593722219590765, -0.9938319632127550222085,
			-0.9886847575474294799385, -0.9815311495537401068674,
			-0.9721828747485817965781, -0.9604912687080202834235,
			-0.9463428583734029051485, -0.9296548574297400566701,
			-0.9103711569570042924978, -0.8884592328722569988904,
			-0.8639079381936904771464, -0.8367259381688687355028,
			-0.8069405319502176118563, -0.7745966692414833770359,
			-0.7397560443526947586772, -0.7024962064915270786098,
			-0.6629096600247805954610, -0.6211029467372264029407,
			-0.5771957100520458148437, -0.5313197436443756239721,
			-0.4836180269458410275622, -0.4342437493468025580021,
			-0.3833593241987303469165, -0.3311353932579768330926,
			-0.2777498220218243150654, -0.2233866864289668816282,
			-0.1682352515522074649823, -0.1124889431331866257458,
			-0.05634431304659278997197, 0.0,
			0.05634431304659278997197, 0.1124889431331866257458,
			0.1682352515522074649823, 0.2233866864289668816282,
			0.2777498220218243150654, 0.3311353932579768330926,
			0.3833593241987303469165, 0.4342437493468025580021,
			0.4836180269458410275622, 0.5313197436443756239721,
			0.5771957100520458148437, 0.6211029467372264029407,
			0.6629096600247805954610, 0.7024962064915270786098,
			0.7397560443526947586772, 0.7745966692414833770359,
			0.8069405319502176118563, 0.8367259381688687355028,
			0.8639079381936904771464, 0.8884592328722569988904,
			0.9103711569570042924978, 0.9296548574297400566701,
			0.9463428583734029051485, 0.9604912687080202834235,
			0.9721828747485817965781, 0.9815311495537401068674,
			0.9886847575474294799385, 0.9938319632127550222085,
			0.9972062593722219590765, 0.9990981249676675976622,
			0.9998728881203576119380,
		},
		w: []float64{
			0.0003632214818455306596936, 0.001265156556230068011373,
			0.002579049794685688272428, 0.004217630441558854839084,
			0.006115506822117246339678, 0.008223007957235929669258,
			0.01049824690962132189827, 0.01290380010035126562598,
			0.01540675046655949780213, 0.01797855156812827033290,
			0.02059423391591271114919, 0.02323144663991026944326,
			0.02586967932721474691076, 0.02848975474583354861251,
			0.03107355111168796487988, 0.03360387714820773054173,
			0.03606443278078257264011, 0.03843981024945553203864,
			0.04071551011694431893389, 0.04287796002500773449291,
			0.04491453165363219741425, 0.04681355499062801240265,
			0.04856433040667319871595, 0.05015713930589953741368,
			0.05158325395204845877681, 0.05283494679011651986208,
			0.05390549933526606392688, 0.05478921052796286503222,
			0.05548140435655936398784, 0.05597843651047631940755,
			0.05627769983125430127260, 0.05637762836038471738766,
			0.05627769983125430127260, 0.05597843651047631940755,
			0.05548140435655936398784, 0.05478921052796286503222,
			0.05390549933526606392688, 0.05283494679011651986208,
			0.05158325395204845877681, 0.05015713930589953741368,
			0.04856433040667319871595, 0.04681355499062801240265,
			0.04491453165363219741425, 0.04287796002500773449291,
			0.04071551011694431893389, 0.03843981024945553203864,
			0.03606443278078257264011, 0.03360387714820773054173,
			0.03107355111168796487988, 0.02848975474583354861251,
			0.02586967932721474691076, 0.02323144663991026944326,
			0.02059423391591271114919, 0.01797855156812827033290,
			0.01540675046655949780213, 0.01290380010035126562598,
			0.01049824690962132189827, 0.008223007957235929669258,
			0.006115506822117246339678, 0.004217630441558854839084,
			0.002579049794685688272428, 0.001265156556230068011373,
			0.0003632214818455306596936,
		},
	},
	127: {
		x: []float64{
			-0.9999824303548915985800, -0.9998728881203576119380,
			-0.9995987996719106832520, -0.9990981249676675976622,
			-0.9983166353184073925306, -0.9972062593722219590765,
			-0.9957241046984071885094, -0.9938319632127550222085,
			-0.9914957211781061323985, -0.9886847575474294799385,
			-0.9853714995985203711138, -0.9815311495537401068674,
			-0.9771415146397057141564, -0.9721828747485817965781,
			-0.9666378515584165670923, -0.9604912687080202834235,
			-0.9537300064257611364147, -0.9463428583734029051485,
			-0.9383203977795928836548, -0.9296548574297400566701,
			-0.9203400254700124207298, -0.9103711569570042924978,
			-0.8997448997769400366386, -0.8884592328722569988904,
			-0.8765134144847052697416, -0.8639079381936904771464,
			-0.8506444947683502797578, -0.8367259381688687355028,
			-0.8221562543649804073725, -0.8069405319502176118563,
			-0.7910849337998483614346, -0.7745966692414833770359,
			-0.7574839663805136379263, -0.7397560443526947586772,
			-0.7214230853700989154850, -0.7024962064915270786098,
			-0.6829874310910792280871, -0.6629096600247805954610,
			-0.6422766425097595137741, -0.6211029467372264029407,
			-0.5994039302422428929743, -0.5771957100520458148437,
			-0.5544951326319325488664, -0.5313197436443756239721,
			-0.5076877575337166021548, -0.4836180269458410275622,
			-0.4591300119898323328735, -0.4342437493468025580021,
			-0.4089798212298886724090, -0.3833593241987303469165,
			-0.3574038378315321523762, -0.3311353932579768330926,
			-0.3045764415567140433353, -0.2777498220218243150654,
			-0.2506787303034831766130, -0.2233866864289668816282,
			-0.1958975027111001539155, -0.1682352515522074649823,
			-0.1404242331525601745938, -0.1124889431331866257458,
			-0.08445404008371088371018, -0.05634431304659278997197,
			-0.02818464894974569433940, 0.0,
			0.02818464894974569433940, 0.05634431304659278997197,
			0.08445404008371088371018, 0.1124889431331866257458,
			0.1404242331525601745938, 0.1682352515522074649823,
			0.1958975027111001539155, 0.2233866864289668816282,
			0.2506787303034831766130, 0.2777498220218243150654,
			0.3045764415567140433353, 0.3311353932579768330926,
			0.3574038378315321523762, 0.3833593241987303469165,
			0.4089798212298886724090, 0.4342437493468025580021,
			0.4591300119898323328735, 0.4836180269458410275622,
			0.5076877575337166021548, 0.5313197436443756239721,
			0.5544951326319325488664, 0.5771957100520458148437,
			0.5994039302422428929743, 0.6211029467372264029407,
			0.6422766425097595137741, 0.6629096600247805954610,
			0.6829874310910792280871, 0.7024962064915270786098,
			0.7214230853700989154850, 0.7397560443526947586772,
			0.7574839663805136379263, 0.7745966692414833770359,
			0.7910849337998483614346, 0.8069405319502176118563,
			0.8221562543649804073725, 0.8367259381688687355028,
			0.8506444947683502797578, 0.8639079381936904771464,
			0.8765134144847052697416, 0.8884592328722569988904,
			0.8997448997769400366386, 0.9103711569570042924978,
			0.9203400254700124207298, 0.9296548574297400566701,
			0.9383203977795928836548, 0.9463428583734029051485,
			0.9537300064257611364147, 0.9604912687080202834235,
			0.9666378515584165670923, 0.9721828747485817965781,
			0.9771415146397057141564, 0.9815311495537401068674,
			0.9853714995985203711138, 0.9886847575474294799385,
			0.9914957211781061323985, 0.9938319632127550222085,
			0.9957241046984071885094, 0.9972062593722219590765,
			0.9983166353184073925306, 0.9990981249676675976622,
			0.9995987996719106832520, 0.9998728881203576119380,
			0.9999824303548915985800,
		},
		w: []float64{
			0.00005053609520786251762467, 0.0001807395644453883578203,
			0.0003777466463269846602744, 0.0006326073193626335442190,
			0.0009383698485423815007940, 0.001289524082610417392099,
			0.001681142865421469906314, 0.002108815245726632879333,
			0.002568764943794020373128, 0.003057753410175531136131,
			0.003572892783517299649384, 0.004111503978654693047170,
			0.004671050372114321747405, 0.005249123454808859125134,
			0.005843449875835639507560, 0.006451900050175736922805,
			0.007072489995433555468046, 0.007703375233279741848166,
			0.008342838753968157705584, 0.008989275784064135723281,
			0.009641177729702536695298, 0.01029711695795635552369,
			0.01095573338783790164803, 0.01161572331995513472698,
			0.01227583056008277008697, 0.01293483966360737345473,
			0.01359157100976554678957, 0.01424487737291677430634,
			0.01489364166481518203481, 0.01553677555584398243993,
			0.01617321872957771994195, 0.01680193857410386527087,
			0.01742193015946417374715, 0.01803221639039128632005,
			0.01863184825613879018631, 0.01921990512472776601932,
			0.01979549504809749948803, 0.02035775505847215946695,
			0.02090585144581202385222, 0.02143898001250386724646,
			0.02195636630531782493926, 0.02245726582681609870713,
			0.02294096422938774876080, 0.02340677749531400620132,
			0.02385405210603854008045, 0.02428216520333659935797,
			0.02469052474448767690906, 0.02507856965294976870684,
			0.02544576996546476581257, 0.02579162697602422938840,
			0.02611567337670609768050, 0.02641747339505825993104,
			0.02669662292745035990615, 0.02695274966763303196344,
			0.02718551322962479181921, 0.02739460526398143251611,
			0.02757974956648187303487, 0.02774070217827968199392,
			0.02787725147661370160852, 0.02798921825523815970378,
			0.02807645579381724660685, 0.02813884991562715063630,
			0.02817631903301660213065, 0.02818881418019235869383,
			0.02817631903301660213065, 0.02813884991562715063630,
			0.02807645579381724660685, 0.02798921825523815970378,
			0.02787725147661370160852, 0.02774070217827968199392,
			0.02757974956648187303487, 0.02739460526398143251611,
			0.02718551322962479181921, 0.02695274966763303196344,
			0.02669662292745035990615, 0.02641747339505825993104,
			0.02611567337670609768050, 0.02579162697602422938840,
			0.02544576996546476581257, 0.02507856965294976870684,
			0.02469052474448767690906, 0.02428216520333659935797,
			0.02385405210603854008045, 0.02340677749531400620132,
			0.02294096422938774876080, 0.02245726582681609870713,
			0.02195636630531782493926, 0.02143898001250386724646,
			0.02090585144581202385222, 0.02035775505847215946695,
			0.01979549504809749948803, 0.01921990512472776601932,
			0.01863184825613879018631, 0.01803221639039128632005,
			0.01742193015946417374715, 0.01680193857410386527087,
			0.01617321872957771994195, 0.01553677555584398243993,
			0.01489364166481518203481, 0.01424487737291677430634,
			0.01359157100976554678957, 0.01293483966360737345473,
			0.01227583056008277008697, 0.01161572331995513472698,
			0.01095573338783790164803, 0.01029711695795635552369,
			0.009641177729702536695298, 0.008989275784064135723281,
			0.008342838753968157705584, 0.007703375233279741848166,
			0.007072489995433555468046, 0.006451900050175736922805,
			0.005843449875835639507560, 0.005249123454808859125134,
			0.004671050372114321747405, 0.004111503978654693047170,
			0.003572892783517299649384, 0.003057753410175531136131,
			0.002568764943794020373128, 0.002108815245726632879333,
			0.001681142865421469906314, 0.001289524082610417392099,
			0.0009383698485423815007940, 0.0006326073193626335442190,
			0.0003777466463269846602744, 0.0001807395644453883578203,
			0.00005053609520786251762467,
		},
	},
}
