package core

import "github.com/signalsfoundry/solarsim/model"

// ptr lifts a value to an optional catalog field.
func ptr[T any](v T) *T { return &v }

// DefaultBodies returns the built-in solar-system records: the barycentric
// root, the Sun (fallback-derived), planetary barycenters, planets, and the
// major moons. Orbital elements are J2000/JPL values at the reference
// epoch; GM in km^3/s^2, radii in km, angles in degrees.
func DefaultBodies() []model.Body {
	return []model.Body{
		// Barycenters and Sun. The root is pinned at the origin; the
		// Sun balances the planetary barycenters, so neither carries a
		// canonical orbit.
		{ID: 0, Name: "Solar System Barycenter"},
		{ID: 10, Name: "Sun", Parent: ptr(0), Streamed: true, FallbackDerived: true},
		{ID: 1, Name: "Mercury Barycenter", Parent: ptr(0), Streamed: true,
			Orbit: &model.OrbitalElements{A: 57909050, E: 0.2056, I: 7.005, Node: 48.331, Peri: 29.124, M0: 174.796}},
		{ID: 2, Name: "Venus Barycenter", Parent: ptr(0), Streamed: true,
			Orbit: &model.OrbitalElements{A: 108208000, E: 0.0067, I: 3.3947, Node: 76.680, Peri: 54.884, M0: 50.416}},
		{ID: 3, Name: "Earth Barycenter", Parent: ptr(0), Streamed: true,
			Orbit: &model.OrbitalElements{A: 149598023, E: 0.0167, I: 0.000, Node: -11.26064, Peri: 114.20783, M0: 358.617}},
		{ID: 4, Name: "Mars Barycenter", Parent: ptr(0), Streamed: true,
			Orbit: &model.OrbitalElements{A: 227939200, E: 0.0935, I: 1.850, Node: 49.558, Peri: 286.502, M0: 19.373}},
		{ID: 5, Name: "Jupiter Barycenter", Parent: ptr(0), Streamed: true,
			Orbit: &model.OrbitalElements{A: 778570000, E: 0.0489, I: 1.303, Node: 100.464, Peri: 273.867, M0: 20.020}},
		{ID: 6, Name: "Saturn Barycenter", Parent: ptr(0), Streamed: true,
			Orbit: &model.OrbitalElements{A: 1433530000, E: 0.0565, I: 2.485, Node: 113.665, Peri: 339.392, M0: 317.020}},
		{ID: 7, Name: "Uranus Barycenter", Parent: ptr(0), Streamed: true,
			Orbit: &model.OrbitalElements{A: 2875040000, E: 0.0463, I: 0.773, Node: 74.006, Peri: 96.998, M0: 142.2386}},
		{ID: 8, Name: "Neptune Barycenter", Parent: ptr(0), Streamed: true,
			Orbit: &model.OrbitalElements{A: 4504450000, E: 0.0097, I: 1.770, Node: 131.784, Peri: 273.187, M0: 256.228}},
		{ID: 9, Name: "Pluto System Barycenter", Parent: ptr(0), Streamed: true,
			Orbit: &model.OrbitalElements{A: 5906440628, E: 0.2488, I: 17.16, Node: 110.299, Peri: 113.834, M0: 14.53}},

		// Planets, barycenter-relative.
		{ID: 199, Name: "Mercury", Parent: ptr(1), Streamed: true,
			GM: ptr(22031.86855), RadiusEq: ptr(2439.7), J2: ptr(6.0e-5),
			Orbit: &model.OrbitalElements{A: 57909050, E: 0.2056, I: 7.005, Node: 48.331, Peri: 29.124, M0: 174.796}},
		{ID: 299, Name: "Venus", Parent: ptr(2), Streamed: true,
			GM: ptr(324858.592), RadiusEq: ptr(6051.8), J2: ptr(4.458e-6),
			Orbit: &model.OrbitalElements{A: 108208000, E: 0.0067, I: 3.3947, Node: 76.680, Peri: 54.884, M0: 50.416}},
		{ID: 399, Name: "Earth", Parent: ptr(3), Streamed: true,
			GM: ptr(398600.435507), RadiusEq: ptr(6378.1366), J2: ptr(1.08262668e-3),
			Orbit: &model.OrbitalElements{A: 149598023, E: 0.0167, I: 0.000, Node: -11.26064, Peri: 114.20783, M0: 358.617}},
		{ID: 499, Name: "Mars", Parent: ptr(4), Streamed: true,
			GM: ptr(42828.375214), RadiusEq: ptr(3396.19), J2: ptr(1.96045e-3),
			Orbit: &model.OrbitalElements{A: 227939200, E: 0.0935, I: 1.850, Node: 49.558, Peri: 286.502, M0: 19.373}},
		{ID: 599, Name: "Jupiter", Parent: ptr(5), Streamed: true,
			GM: ptr(126686531.9), RadiusEq: ptr(71492.0), J2: ptr(0.014696),
			Orbit: &model.OrbitalElements{A: 778570000, E: 0.0489, I: 1.303, Node: 100.464, Peri: 273.867, M0: 20.020}},
		{ID: 699, Name: "Saturn", Parent: ptr(6), Streamed: true,
			GM: ptr(37931207.8), RadiusEq: ptr(60268.0), J2: ptr(0.016298),
			Orbit: &model.OrbitalElements{A: 1433530000, E: 0.0565, I: 2.485, Node: 113.665, Peri: 339.392, M0: 317.020}},
		{ID: 799, Name: "Uranus", Parent: ptr(7), Streamed: true,
			GM: ptr(5793951.3), RadiusEq: ptr(25559.0),
			Orbit: &model.OrbitalElements{A: 2875040000, E: 0.0463, I: 0.773, Node: 74.006, Peri: 96.998, M0: 142.2386}},
		{ID: 899, Name: "Neptune", Parent: ptr(8), Streamed: true,
			GM: ptr(6835103.1), RadiusEq: ptr(24764.0),
			Orbit: &model.OrbitalElements{A: 4504450000, E: 0.0097, I: 1.770, Node: 131.784, Peri: 273.187, M0: 256.228}},
		{ID: 999, Name: "Pluto", Parent: ptr(9), Streamed: true,
			GM: ptr(869.613817), RadiusEq: ptr(1188.3),
			Orbit: &model.OrbitalElements{A: 5906440628, E: 0.2488, I: 17.16, Node: 110.299, Peri: 113.834, M0: 14.53}},

		// Major moons. Pole/prime-meridian rows are IAU polynomial
		// coefficients, carried verbatim for downstream orientation use.
		{ID: 301, Name: "Moon", Parent: ptr(3), Streamed: true,
			GM: ptr(4902.800066), RadiusEq: ptr(1737.4), J2: ptr(2.032e-4),
			OrientationQuat: ptr([4]float64{0.3186675622944306, 0.9240892132462319, 0.19537822808060934, -0.0796081572162473}),
			PoleRA:          ptr([3]float64{269.9949, 0.0031, 0.0}),
			PoleDec:         ptr([3]float64{66.5392, 0.0130, 0.0}),
			PrimeMeridian:   ptr([3]float64{38.3213, 13.17635815, -1.4e-12}),
			Orbit:           &model.OrbitalElements{A: 384400, E: 0.0549, I: 5.145, Node: 125.08, Peri: 318.15, M0: 115.3654}},
		{ID: 401, Name: "Phobos", Parent: ptr(4), Streamed: true,
			GM: ptr(0.0007112), RadiusEq: ptr(11.2667), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.6308383566747584, 0.7115274160209963, 0.3075094984340903, 0.034779482043131506}),
			PoleRA:          ptr([3]float64{317.67071657, -0.10844326, 0.0}),
			PoleDec:         ptr([3]float64{52.88627266, -0.06134706, 0.0}),
			PrimeMeridian:   ptr([3]float64{35.18774440, 1128.84475928, 0.0}),
			Orbit:           &model.OrbitalElements{A: 9376, E: 0.0151, I: 1.075, Node: 49.2, Peri: 150.057, M0: 177.4}},
		{ID: 402, Name: "Deimos", Parent: ptr(4), Streamed: true,
			GM: ptr(0.0000985), RadiusEq: ptr(6.2), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.8454450655355805, 0.42626836332308543, 0.3119031808153065, -0.07895776965372207}),
			PoleRA:          ptr([3]float64{316.65705808, -0.10518014, 0.0}),
			PoleDec:         ptr([3]float64{53.50992033, -0.05979094, 0.0}),
			PrimeMeridian:   ptr([3]float64{79.39932954, 285.16188899, 0.0}),
			Orbit:           &model.OrbitalElements{A: 23463.2, E: 0.00033, I: 1.788, Node: 316.65, Peri: 260.729, M0: 53.2}},
		{ID: 501, Name: "Io", Parent: ptr(5), Streamed: true,
			GM: ptr(595.6), RadiusEq: ptr(1821.6), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{-0.9627925031965429, 0.15620667287302778, 0.043054086617703644, 0.21627856288589808}),
			PoleRA:          ptr([3]float64{268.05, -0.009, 0.0}),
			PoleDec:         ptr([3]float64{64.50, 0.003, 0.0}),
			PrimeMeridian:   ptr([3]float64{200.39, 203.4889538, 0.0}),
			Orbit:           &model.OrbitalElements{A: 421700, E: 0.0041, I: 0.036, Node: 43.977, Peri: 84.129, M0: 171.016}},
		{ID: 502, Name: "Europa", Parent: ptr(5), Streamed: true,
			GM: ptr(320.0), RadiusEq: ptr(1560.8), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.2862225966304867, 0.9333206784518087, 0.20494819207692228, -0.07060718742988059}),
			PoleRA:          ptr([3]float64{268.08, -0.009, 0.0}),
			PoleDec:         ptr([3]float64{64.51, 0.003, 0.0}),
			PrimeMeridian:   ptr([3]float64{36.022, 101.3747235, 0.0}),
			Orbit:           &model.OrbitalElements{A: 671034, E: 0.009, I: 0.465, Node: 219.106, Peri: 88.970, M0: 29.298}},
		{ID: 503, Name: "Ganymede", Parent: ptr(5), Streamed: true,
			GM: ptr(988.7), RadiusEq: ptr(2634.1), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.3518206607032618, 0.9095464313346583, 0.2041922883141911, -0.08516467191108519}),
			PoleRA:          ptr([3]float64{268.20, -0.009, 0.0}),
			PoleDec:         ptr([3]float64{64.57, 0.003, 0.0}),
			PrimeMeridian:   ptr([3]float64{44.064, 50.3176081, 0.0}),
			Orbit:           &model.OrbitalElements{A: 1070412, E: 0.0013, I: 0.177, Node: 63.552, Peri: 192.417, M0: 192.417}},
		{ID: 504, Name: "Callisto", Parent: ptr(5), Streamed: true,
			GM: ptr(717.0), RadiusEq: ptr(2410.3), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{-0.7572824467695023, 0.6152217280724471, 0.14340098285830222, 0.16571565779255987}),
			PoleRA:          ptr([3]float64{268.72, -0.009, 0.0}),
			PoleDec:         ptr([3]float64{64.83, 0.003, 0.0}),
			PrimeMeridian:   ptr([3]float64{259.51, 21.5710715, 0.0}),
			Orbit:           &model.OrbitalElements{A: 1882709, E: 0.007, I: 0.192, Node: 298.848, Peri: 52.643, M0: 52.643}},
		{ID: 601, Name: "Mimas", Parent: ptr(6), Streamed: true,
			GM: ptr(2.502), RadiusEq: ptr(198.2), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.9230995744431174, 0.38212717482503544, 0.019096998939105683, 0.0387466457218241}),
			PoleRA:          ptr([3]float64{40.66, -0.036, 0.0}),
			PoleDec:         ptr([3]float64{83.52, -0.004, 0.0}),
			PrimeMeridian:   ptr([3]float64{333.46, 381.9945550, 0.0}),
			Orbit:           &model.OrbitalElements{A: 185539, E: 0.0196, I: 1.574, Node: 66.2, Peri: 160.4, M0: 275.3}},
		{ID: 602, Name: "Enceladus", Parent: ptr(6), Streamed: true,
			GM: ptr(7.210), RadiusEq: ptr(252.1), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.9288664636898875, 0.36607751623426327, 0.0263856632356688, 0.049981411700848105}),
			PoleRA:          ptr([3]float64{40.66, -0.036, 0.0}),
			PoleDec:         ptr([3]float64{83.52, -0.004, 0.0}),
			PrimeMeridian:   ptr([3]float64{6.32, 262.7318996, 0.0}),
			Orbit:           &model.OrbitalElements{A: 238042, E: 0.0047, I: 0.009, Node: 0.0, Peri: 119.5, M0: 57.0}},
		{ID: 603, Name: "Tethys", Parent: ptr(6), Streamed: true,
			GM: ptr(41.21), RadiusEq: ptr(531.1), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.9318940517031924, 0.3575191144733003, 0.03662851343840426, 0.04911121246444622}),
			PoleRA:          ptr([3]float64{40.66, -0.036, 0.0}),
			PoleDec:         ptr([3]float64{83.52, -0.004, 0.0}),
			PrimeMeridian:   ptr([3]float64{8.95, 190.6979085, 0.0}),
			Orbit:           &model.OrbitalElements{A: 294672, E: 0.0001, I: 1.091, Node: 273.0, Peri: 335.3, M0: 0.0}},
		{ID: 604, Name: "Dione", Parent: ptr(6), Streamed: true,
			GM: ptr(73.116), RadiusEq: ptr(561.4), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.8983481011005575, 0.43563326836804733, 0.022509571322388757, 0.05184268452615175}),
			PoleRA:          ptr([3]float64{40.66, -0.036, 0.0}),
			PoleDec:         ptr([3]float64{83.52, -0.004, 0.0}),
			PrimeMeridian:   ptr([3]float64{357.6, 131.5349316, 0.0}),
			Orbit:           &model.OrbitalElements{A: 377415, E: 0.0022, I: 0.028, Node: 0.0, Peri: 116.0, M0: 212.0}},
		{ID: 605, Name: "Rhea", Parent: ptr(6), Streamed: true,
			GM: ptr(153.94), RadiusEq: ptr(763.8), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.04819756263171842, 0.9970816099735007, -0.03548242614950518, 0.04739467737582312}),
			PoleRA:          ptr([3]float64{40.38, -0.036, 0.0}),
			PoleDec:         ptr([3]float64{83.55, -0.004, 0.0}),
			PrimeMeridian:   ptr([3]float64{235.16, 79.6900478, 0.0}),
			Orbit:           &model.OrbitalElements{A: 527108, E: 0.001, I: 0.345, Node: 133.7, Peri: 44.3, M0: 31.5}},
		{ID: 606, Name: "Titan", Parent: ptr(6), Streamed: true,
			GM: ptr(8978.0), RadiusEq: ptr(2574.7), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{-0.3734396870113086, 0.9258818003502802, -0.05035007964612972, 0.027396376122554734}),
			PoleRA:          ptr([3]float64{39.4827, 0.0, 0.0}),
			PoleDec:         ptr([3]float64{83.4279, 0.0, 0.0}),
			PrimeMeridian:   ptr([3]float64{186.5855, 22.5769768, 0.0}),
			Orbit:           &model.OrbitalElements{A: 1221870, E: 0.0288, I: 0.34854, Node: 78.6, Peri: 78.3, M0: 11.7}},
		{ID: 608, Name: "Iapetus", Parent: ptr(6), Streamed: true,
			GM: ptr(120.5), RadiusEq: ptr(734.5), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.3662745576368781, 0.9213433421007585, 0.11660036388932458, 0.05808398691026053}),
			PoleRA:          ptr([3]float64{318.16, -3.949, 0.0}),
			PoleDec:         ptr([3]float64{75.03, -1.143, 0.0}),
			PrimeMeridian:   ptr([3]float64{355.2, 4.5379572, 0.0}),
			Orbit:           &model.OrbitalElements{A: 3560820, E: 0.0283, I: 15.47, Node: 86.5, Peri: 254.5, M0: 74.8}},
		{ID: 701, Name: "Ariel", Parent: ptr(7), Streamed: true,
			GM: ptr(86.0), RadiusEq: ptr(578.9), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.5781932973945025, 0.191729684226664, 0.07649565212061894, -0.7893545808070397}),
			PoleRA:          ptr([3]float64{257.43, 0.0, 0.0}),
			PoleDec:         ptr([3]float64{-15.10, 0.0, 0.0}),
			PrimeMeridian:   ptr([3]float64{156.22, -142.8356681, 0.0}),
			Orbit:           &model.OrbitalElements{A: 190900, E: 0.001, I: 0.0, Node: 0.0, Peri: 83.3, M0: 119.8}},
		{ID: 702, Name: "Umbriel", Parent: ptr(7), Streamed: true,
			GM: ptr(81.5), RadiusEq: ptr(584.7), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.4501417420706476, 0.4100905667125323, 0.39181002197012754, -0.6896977931114213}),
			PoleRA:          ptr([3]float64{257.43, 0.0, 0.0}),
			PoleDec:         ptr([3]float64{-15.10, 0.0, 0.0}),
			PrimeMeridian:   ptr([3]float64{108.05, -86.8688923, 0.0}),
			Orbit:           &model.OrbitalElements{A: 266000, E: 0.004, I: 0.1, Node: 195.5, Peri: 157.5, M0: 258.3}},
		{ID: 703, Name: "Titania", Parent: ptr(7), Streamed: true,
			GM: ptr(228.2), RadiusEq: ptr(788.9), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.32791612117152835, 0.5142453564688234, 0.5585107863781351, -0.5622174244234606}),
			PoleRA:          ptr([3]float64{257.43, 0.0, 0.0}),
			PoleDec:         ptr([3]float64{-15.10, 0.0, 0.0}),
			PrimeMeridian:   ptr([3]float64{77.74, -41.3514316, 0.0}),
			Orbit:           &model.OrbitalElements{A: 436300, E: 0.001, I: 0.1, Node: 26.4, Peri: 202.0, M0: 53.2}},
		{ID: 704, Name: "Oberon", Parent: ptr(7), Streamed: true,
			GM: ptr(192.4), RadiusEq: ptr(761.4), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{-0.03179395978929699, 0.6070279410001568, 0.7826245002334988, -0.1341831382860504}),
			PoleRA:          ptr([3]float64{257.43, 0.0, 0.0}),
			PoleDec:         ptr([3]float64{-15.10, 0.0, 0.0}),
			PrimeMeridian:   ptr([3]float64{6.77, -26.7394932, 0.0}),
			Orbit:           &model.OrbitalElements{A: 583400, E: 0.001, I: 0.1, Node: 30.5, Peri: 182.4, M0: 139.7}},
		{ID: 705, Name: "Miranda", Parent: ptr(7), Streamed: true,
			GM: ptr(4.4), RadiusEq: ptr(235.8), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.1269439866585823, 0.5885443922397523, 0.7482859130952207, -0.27851196541193374}),
			PoleRA:          ptr([3]float64{257.43, 0.0, 0.0}),
			PoleDec:         ptr([3]float64{-15.08, 0.0, 0.0}),
			PrimeMeridian:   ptr([3]float64{30.70, -254.6906892, 0.0}),
			Orbit:           &model.OrbitalElements{A: 129900, E: 0.001, I: 4.4, Node: 100.7, Peri: 155.6, M0: 72.4}},
		{ID: 801, Name: "Triton", Parent: ptr(8), Streamed: true,
			GM: ptr(1427.6), RadiusEq: ptr(1353.4), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{-0.24357406144561938, 0.78368286204414, 0.39896516331806564, 0.4090716890567964}),
			PoleRA:          ptr([3]float64{299.36, 0.0, 0.0}),
			PoleDec:         ptr([3]float64{41.17, 0.0, 0.0}),
			PrimeMeridian:   ptr([3]float64{296.53, -61.2572637, 0.0}),
			Orbit:           &model.OrbitalElements{A: 354800, E: 0.000, I: 157.3, Node: 178.1, Peri: 0.0, M0: 63.0}},
		{ID: 802, Name: "Proteus", Parent: ptr(8), Streamed: true,
			GM: ptr(0.105), RadiusEq: ptr(210.0), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.8027893751159789, 0.4391895681536065, 0.3416179806521816, -0.2143336131386546}),
			Orbit:           &model.OrbitalElements{A: 117600, E: 0.000, I: 0.0, Node: 0.0, Peri: 0.0, M0: 276.8}},
		{ID: 803, Name: "Nereid", Parent: ptr(8), Streamed: true,
			GM: ptr(0.021), RadiusEq: ptr(170.0), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.0, 0.0, 0.0, 1.0}),
			PoleRA:          ptr([3]float64{299.36, 0.0, 0.0}),
			PoleDec:         ptr([3]float64{43.36, 0.0, 0.0}),
			PrimeMeridian:   ptr([3]float64{254.06, 1222.8441209, 0.0}),
			Orbit:           &model.OrbitalElements{A: 5513900, E: 0.751, I: 5.1, Node: 319.5, Peri: 296.8, M0: 318.5}},
		{ID: 901, Name: "Charon", Parent: ptr(9), Streamed: true,
			GM: ptr(101.4), RadiusEq: ptr(606.0), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{0.7071, 0.0, 0.7071, 0.0}),
			Orbit:           &model.OrbitalElements{A: 19591.4, E: 0.000, I: 96.145, Node: 223.046, Peri: 0.0, M0: 0.0}},
		{ID: 902, Name: "Nix", Parent: ptr(9), Streamed: true,
			GM: ptr(0.003), RadiusEq: ptr(25.0), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{1.0, 0.0, 0.0, 0.0}),
			Orbit:           &model.OrbitalElements{A: 48694, E: 0.002, I: 96.2, Node: 223.1, Peri: 0.0, M0: 0.0}},
		{ID: 903, Name: "Hydra", Parent: ptr(9), Streamed: true,
			GM: ptr(0.005), RadiusEq: ptr(32.5), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{1.0, 0.0, 0.0, 0.0}),
			Orbit:           &model.OrbitalElements{A: 64738, E: 0.005, I: 96.4, Node: 223.2, Peri: 0.0, M0: 0.0}},
		{ID: 904, Name: "Kerberos", Parent: ptr(9), Streamed: true,
			GM: ptr(0.001), RadiusEq: ptr(12.0), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{1.0, 0.0, 0.0, 0.0}),
			Orbit:           &model.OrbitalElements{A: 57783, E: 0.003, I: 96.3, Node: 223.15, Peri: 0.0, M0: 0.0}},
		{ID: 905, Name: "Styx", Parent: ptr(9), Streamed: true,
			GM: ptr(0.0005), RadiusEq: ptr(8.0), J2: ptr(0.0),
			OrientationQuat: ptr([4]float64{1.0, 0.0, 0.0, 0.0}),
			Orbit:           &model.OrbitalElements{A: 42656, E: 0.005, I: 96.1, Node: 223.0, Peri: 0.0, M0: 0.0}},
	}
}

// DefaultCatalog loads and validates the built-in solar-system catalog.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(DefaultBodies())
}
