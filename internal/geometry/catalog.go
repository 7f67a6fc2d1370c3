package geometry

// riftZones is the authored Summoner's Rift region catalog. Coordinates are
// game units; vertices sit on a 30-unit grid. Order matters: Classify scans
// priority zones first, then the rest in this order.
var riftZones = []Zone{
	{Name: "Blue Side Raptor Brush", Polygon: []Point{{6480, 4440}, {6600, 4920}, {6840, 4980}, {6690, 4440}}},
	{Name: "Blue Side Raptors (Inner)", Polygon: []Point{{6600, 4920}, {6660, 5730}, {7050, 5940}, {7470, 5790}, {7830, 5370}}},
	{Name: "Blue Side Raptors (Outer)", Polygon: []Point{{6750, 4500}, {6870, 5010}, {7860, 5370}, {8550, 4800}}},
	{Name: "Blue Side Raptor Intersection", Polygon: []Point{{8550, 4800}, {7830, 5370}, {8160, 5850}, {9270, 4800}}},
	{Name: "Blue Side Raptor Ramp Entrance", Polygon: []Point{{8820, 5190}, {8160, 5850}, {8520, 6150}, {9360, 5550}}},
	{Name: "Behind Dragon Pit 1", Polygon: []Point{{8850, 3930}, {8850, 4800}, {9300, 4800}, {9510, 3810}}},
	{Name: "Behind Dragon Pit 2", Polygon: []Point{{8520, 3150}, {8910, 3930}, {10110, 3660}, {10080, 2880}}},
	{Name: "Blue Side Red Brush", Polygon: []Point{{7980, 3510}, {8700, 3990}, {8850, 3930}, {8640, 3510}}},
	{Name: "Blue Side Red Ramp Brush", Polygon: []Point{{8610, 3990}, {8550, 4800}, {8850, 4800}, {8850, 3960}}},
	{Name: "Blue Side Red Buff 1", Polygon: []Point{{7500, 3240}, {6630, 3600}, {6450, 4410}, {8040, 4710}, {8520, 3900}}},
	{Name: "Blue Side Red Buff 2", Polygon: []Point{{7560, 3210}, {7950, 3510}, {8700, 3510}, {8460, 3150}}},
	{Name: "Blue Side Krugs Intersection Brush", Polygon: []Point{{6600, 3030}, {6900, 3480}, {7500, 3240}, {7230, 2790}}},
	{Name: "Blue Side Krugs Intersection 2", Polygon: []Point{{6870, 2250}, {7500, 3210}, {7740, 3210}, {7950, 2070}}},
	{Name: "Blue Side Krugs Intersection 1", Polygon: []Point{{6000, 1800}, {6000, 2370}, {6570, 3000}, {7200, 2790}, {6420, 1800}}},
	{Name: "Blue Side Krugs", Polygon: []Point{{7980, 1740}, {7740, 3180}, {9150, 3030}, {9450, 2310}, {8370, 1740}}},
	{Name: "Blue Side Krugs Brush", Polygon: []Point{{8880, 1740}, {8850, 2010}, {9450, 2310}, {9930, 1740}}},
	{Name: "Blue Side Red Shallow Cross", Polygon: []Point{{7830, 5430}, {7020, 6240}, {7410, 6630}, {8220, 5940}}},
	{Name: "Blue Side Red Gate Brush", Polygon: []Point{{5640, 3120}, {5430, 3450}, {5850, 3660}, {6030, 3300}}},
	{Name: "Blue Side Red Gate 1", Polygon: []Point{{5250, 1800}, {4500, 3990}, {4950, 4350}, {5700, 3000}, {5790, 1800}}},
	{Name: "Blue Side Red Gate 2", Polygon: []Point{{5460, 3510}, {5340, 3690}, {5700, 3960}, {5850, 3690}}},
	{Name: "Blue Side Red Deep Path", Polygon: []Point{{6330, 2760}, {5640, 4260}, {6450, 4410}, {6690, 3150}}},
	{Name: "Blue Side Red Deep Cross", Polygon: []Point{{5610, 4260}, {5610, 4920}, {6150, 5400}, {6630, 5070}, {6450, 4410}}},
	{Name: "Blue Side Red Dive Area", Polygon: []Point{{10230, 1830}, {9480, 2280}, {9210, 2910}, {10950, 2820}, {11460, 2010}, {11010, 1800}}},
	{Name: "Blue Side Red Tribrush", Polygon: []Point{{10080, 2880}, {10110, 3660}, {11040, 3720}, {11160, 2820}}},
	{Name: "Blue Side Wolves Ramp Brush", Polygon: []Point{{5100, 8340}, {4740, 8520}, {5220, 8880}, {5520, 8670}}},
	{Name: "Blue Side Wolves Ramp", Polygon: []Point{{4710, 8520}, {4470, 8610}, {4980, 9000}, {5190, 8880}}},
	{Name: "Blue Side Wolves Intersection 1", Polygon: []Point{{4470, 7020}, {3870, 7200}, {3900, 7470}, {4560, 8580}, {5400, 8100}}},
	{Name: "Blue Side Wolves Intersection 2", Polygon: []Point{{4470, 6660}, {4500, 6990}, {4890, 7380}, {4830, 6540}}},
	{Name: "Blue Side Wolves Brush", Polygon: []Point{{4860, 6540}, {4890, 7380}, {5280, 7350}, {5190, 6450}}},
	{Name: "Blue Side Blue Deep Cross", Polygon: []Point{{4470, 5820}, {4260, 6660}, {5460, 6360}, {4860, 5760}}},
	{Name: "Blue Side Wolves", Polygon: []Point{{3420, 5910}, {2970, 6480}, {3030, 7230}, {4140, 6990}, {4470, 5820}}},
	{Name: "Blue Side Blue Intersection 1", Polygon: []Point{{2370, 7350}, {1770, 7680}, {1770, 8130}, {3930, 7590}, {3840, 7080}}},
	{Name: "Blue Side Blue Intersection 2", Polygon: []Point{{2370, 6540}, {2370, 7350}, {3000, 7230}, {2970, 6480}}},
	{Name: "Blue Side Blue Gate", Polygon: []Point{{1770, 5280}, {1770, 5730}, {2370, 6540}, {2970, 6480}, {4110, 5070}, {3780, 4620}}},
	{Name: "Blue Side Blue Buff", Polygon: []Point{{2940, 7860}, {3300, 8730}, {3810, 9030}, {4410, 8370}, {3930, 7590}}},
	{Name: "Blue Side Gromp", Polygon: []Point{{2940, 7860}, {1770, 8160}, {1860, 9090}, {2070, 9390}, {2760, 9240}, {3240, 8700}}},
	{Name: "Blue Side Blue Tribrush", Polygon: []Point{{1770, 9480}, {1770, 10050}, {2130, 10890}, {2730, 9990}, {2640, 9300}}},
	{Name: "Blue Side Blue Pocket", Polygon: []Point{{2820, 9900}, {2340, 10590}, {2670, 11130}, {3330, 9720}}},
	{Name: "Blue Side Blue Ramp Brush", Polygon: []Point{{3210, 8670}, {2760, 9210}, {2880, 9720}, {3480, 8880}}},
	{Name: "Blue Side Blue Ramp", Polygon: []Point{{3510, 8850}, {2790, 9870}, {3960, 9510}, {3840, 9060}}},
	{Name: "Blue Side Blue Shallow Cross", Polygon: []Point{{5910, 6720}, {5100, 7590}, {6000, 7920}, {6600, 7410}}},
	{Name: "Red Side Raptor Brush", Polygon: []Point{{8190, 10020}, {8310, 10560}, {8580, 10590}, {8430, 10080}}},
	{Name: "Red Side Raptors (Inner)", Polygon: []Point{{7980, 9060}, {7560, 9210}, {7200, 9630}, {8400, 10050}, {8370, 9270}}},
	{Name: "Red Side Raptors (Outer)", Polygon: []Point{{7200, 9660}, {6510, 10230}, {8310, 10560}, {8190, 10020}}},
	{Name: "Red Side Raptor Intersection", Polygon: []Point{{6840, 9180}, {5760, 10230}, {6510, 10230}, {7230, 9540}}},
	{Name: "Red Side Raptor Ramp Entrance", Polygon: []Point{{6510, 8790}, {5640, 9480}, {6150, 9810}, {6870, 9150}}},
	{Name: "Behind Baron Pit 1", Polygon: []Point{{5730, 10230}, {5520, 11220}, {6180, 11100}, {6180, 10230}}},
	{Name: "Behind Baron Pit 2", Polygon: []Point{{6120, 11100}, {4950, 11370}, {4980, 12150}, {6510, 11880}}},
	{Name: "Red Side Red Brush", Polygon: []Point{{6210, 11100}, {6390, 11520}, {7080, 11520}, {6330, 11040}}},
	{Name: "Red Side Red Ramp Brush", Polygon: []Point{{6180, 10230}, {6180, 11070}, {6420, 11040}, {6480, 10230}}},
	{Name: "Red Side Red Buff 1", Polygon: []Point{{6990, 10320}, {6510, 11130}, {7530, 11790}, {8400, 11430}, {8580, 10620}}},
	{Name: "Red Side Red Buff 2", Polygon: []Point{{6360, 11520}, {6540, 11880}, {7470, 11820}, {7050, 11520}}},
	{Name: "Red Side Krugs Intersection Brush", Polygon: []Point{{7470, 11820}, {7770, 12240}, {8400, 12000}, {8130, 11550}}},
	{Name: "Red Side Krugs Intersection 1", Polygon: []Point{{7290, 11820}, {7080, 12960}, {8160, 12780}, {7500, 11820}}},
	{Name: "Red Side Krugs Intersection 2", Polygon: []Point{{8460, 12030}, {7800, 12240}, {8580, 13230}, {9030, 13230}}},
	{Name: "Red Side Krugs", Polygon: []Point{{5880, 12000}, {5580, 12720}, {6690, 13290}, {7050, 13290}, {7290, 11850}}},
	{Name: "Red Side Krugs Brush", Polygon: []Point{{5580, 12720}, {5100, 13290}, {6150, 13290}, {6180, 13290}}},
	{Name: "Red Side Red Shallow Cross", Polygon: []Point{{7620, 8400}, {6840, 9090}, {7200, 9480}, {8040, 8790}}},
	{Name: "Red Side Red Gate Brush", Polygon: []Point{{9180, 11340}, {9000, 11730}, {9390, 11880}, {9570, 11550}}},
	{Name: "Red Side Red Gate 1", Polygon: []Point{{10080, 10710}, {9330, 12030}, {9240, 13230}, {9780, 13230}, {10530, 11040}}},
	{Name: "Red Side Red Gate 2", Polygon: []Point{{9330, 11070}, {9180, 11370}, {9570, 11550}, {9690, 11370}}},
	{Name: "Red Side Red Deep Path", Polygon: []Point{{8610, 10620}, {8370, 11850}, {8730, 12300}, {9420, 10770}}},
	{Name: "Red Side Red Deep Cross", Polygon: []Point{{8670, 9360}, {8400, 9960}, {8580, 10620}, {9420, 10770}, {9450, 10080}}},
	{Name: "Red Side Red Dive Area", Polygon: []Point{{4050, 12210}, {3600, 12960}, {4110, 13230}, {4650, 13230}, {5520, 12810}, {5820, 12150}}},
	{Name: "Red Side Red Tribrush", Polygon: []Point{{3990, 11250}, {3840, 12210}, {4950, 12150}, {4920, 11370}}},
	{Name: "Red Side Wolves Ramp Brush", Polygon: []Point{{9810, 6090}, {9450, 6330}, {9960, 6690}, {10320, 6510}}},
	{Name: "Red Side Wolves Ramp", Polygon: []Point{{9780, 6060}, {10320, 6510}, {10590, 6360}, {9990, 5940}}},
	{Name: "Red Side Wolves Intersection 1", Polygon: []Point{{10440, 6450}, {9390, 6930}, {10530, 8010}, {11130, 7830}, {11100, 7530}}},
	{Name: "Red Side Wolves Intersection 2", Polygon: []Point{{10140, 7680}, {10200, 8490}, {10560, 8400}, {10530, 8040}}},
	{Name: "Red Side Wolves Brush", Polygon: []Point{{9750, 7710}, {9840, 8580}, {10170, 8520}, {10140, 7650}}},
	{Name: "Red Side Blue Deep Cross", Polygon: []Point{{9540, 8670}, {10170, 9270}, {10560, 9210}, {10740, 8400}}},
	{Name: "Red Side Wolves", Polygon: []Point{{10830, 8040}, {10530, 9210}, {11580, 9120}, {12030, 8550}, {11970, 7800}}},
	{Name: "Red Side Blue Intersection 1", Polygon: []Point{{11070, 7440}, {11160, 7950}, {12630, 7680}, {13230, 7350}, {13230, 6900}}},
	{Name: "Red Side Blue Intersection 2", Polygon: []Point{{12030, 7800}, {12060, 8550}, {12660, 8490}, {12660, 7680}}},
	{Name: "Red Side Blue Gate", Polygon: []Point{{12030, 8580}, {10920, 10050}, {11250, 10410}, {13260, 9750}, {13260, 9300}, {12660, 8490}}},
	{Name: "Red Side Blue Buff", Polygon: []Point{{11190, 6000}, {10590, 6660}, {11070, 7440}, {12030, 7170}, {11700, 6330}}},
	{Name: "Red Side Gromp", Polygon: []Point{{11760, 6330}, {12060, 7170}, {13230, 6870}, {13140, 5940}, {12930, 5640}, {12240, 5790}}},
	{Name: "Red Side Blue Tribrush", Polygon: []Point{{12870, 4140}, {12270, 5040}, {12360, 5730}, {13230, 5640}, {13230, 4980}}},
	{Name: "Red Side Blue Pocket", Polygon: []Point{{12360, 3930}, {11670, 5250}, {12300, 5040}, {12690, 4470}}},
	{Name: "Red Side Blue Ramp Brush", Polygon: []Point{{12270, 5100}, {11520, 6150}, {11790, 6330}, {12330, 5670}}},
	{Name: "Red Side Blue Ramp", Polygon: []Point{{12240, 5070}, {11070, 5520}, {11190, 6000}, {11520, 6180}}},
	{Name: "Red Side Blue Shallow Cross", Polygon: []Point{{9330, 6840}, {8430, 7590}, {9150, 8310}, {9930, 7440}}},
	{Name: "Bot Lane Brush", Polygon: []Point{{7980, 6120}, {7620, 6450}, {8640, 7380}, {9060, 7050}}},
	{Name: "Bot Mid River 1", Polygon: []Point{{8190, 5910}, {7950, 6150}, {9030, 7050}, {9330, 6840}}},
	{Name: "Bot Mid River 2", Polygon: []Point{{9120, 5730}, {8550, 6180}, {9060, 6600}, {9600, 6180}}},
	{Name: "Bot Pixel", Polygon: []Point{{9360, 5550}, {9120, 5730}, {9600, 6180}, {9960, 5940}}},
	{Name: "Dragon Pit", Polygon: []Point{{9510, 3810}, {9270, 4740}, {10020, 5070}, {10800, 4710}, {10860, 3810}}},
	{Name: "Outside Dragon Pit (Higher)", Polygon: []Point{{9210, 5430}, {10140, 6060}, {11100, 5640}, {10800, 4740}}},
	{Name: "Outside Dragon Pit (Lower)", Polygon: []Point{{11280, 3900}, {10830, 4650}, {11070, 5490}, {11670, 5280}, {12090, 4350}}},
	{Name: "Bot River Brush", Polygon: []Point{{12030, 3240}, {11820, 4200}, {12090, 4380}, {12480, 3660}}},
	{Name: "Bot Tribrush Entrance", Polygon: []Point{{11160, 3210}, {11040, 3720}, {11400, 3900}, {11490, 3090}}},
	{Name: "Bot River Mouth 1", Polygon: []Point{{11550, 2790}, {11400, 3930}, {11850, 4140}, {12030, 3240}}},
	{Name: "Bot River Mouth 2", Polygon: []Point{{11700, 2910}, {12510, 3660}, {12810, 3300}, {11880, 2490}}},
	{Name: "Top Lane Brush", Polygon: []Point{{6360, 7590}, {6000, 7950}, {7050, 8820}, {7410, 8550}}},
	{Name: "Top Mid River 1", Polygon: []Point{{6000, 7920}, {5730, 8160}, {6810, 9060}, {7050, 8850}}},
	{Name: "Top Mid River 2", Polygon: []Point{{5970, 8370}, {5430, 8790}, {5910, 9240}, {6480, 8790}}},
	{Name: "Top Pixel", Polygon: []Point{{5430, 8790}, {5040, 9030}, {5610, 9450}, {5910, 9270}}},
	{Name: "Baron Pit", Polygon: []Point{{5040, 9900}, {4230, 10380}, {4170, 11160}, {5520, 11160}, {5760, 10230}}},
	{Name: "Outside Baron Pit (Lower)", Polygon: []Point{{4860, 8910}, {3930, 9330}, {4230, 10350}, {5700, 9510}}},
	{Name: "Outside Baron Pit (Higher)", Polygon: []Point{{3960, 9480}, {3360, 9720}, {2940, 10590}, {3810, 11130}, {4200, 10410}}},
	{Name: "Top River Brush", Polygon: []Point{{2940, 10620}, {2550, 11310}, {3000, 11730}, {3210, 10770}}},
	{Name: "Top Tribrush Entrance", Polygon: []Point{{3630, 11070}, {3510, 11880}, {3870, 11760}, {3990, 11250}}},
	{Name: "Top River Mouth 1", Polygon: []Point{{3180, 10830}, {3000, 11730}, {3480, 12180}, {3630, 11040}}},
	{Name: "Top River Mouth 2", Polygon: []Point{{2550, 11340}, {2220, 11910}, {3120, 12630}, {3450, 12270}}},
	{Name: "Mid Lane (Center)", Polygon: []Point{{7650, 6450}, {6420, 7620}, {7410, 8520}, {8670, 7350}}},
	{Name: "Blue Side Mid Outer Tower", Polygon: []Point{{6360, 5610}, {5550, 6360}, {6060, 6810}, {6810, 6090}}},
	{Name: "Blue Side Mid Outside Outer Tower", Polygon: []Point{{6810, 6090}, {6090, 6840}, {6630, 7380}, {7410, 6630}}},
	{Name: "Blue Side Mid Inner Tower", Polygon: []Point{{4980, 4350}, {4110, 5040}, {4800, 5730}, {5580, 4950}}},
	{Name: "Blue Side Mid Cross", Polygon: []Point{{5610, 4980}, {4860, 5730}, {5490, 6330}, {6300, 5580}}},
	{Name: "Red Side Mid Outer Tower", Polygon: []Point{{9000, 8160}, {8220, 8910}, {8640, 9360}, {9540, 8640}}},
	{Name: "Red Side Mid Outside Outer Tower", Polygon: []Point{{8460, 7590}, {7620, 8400}, {8160, 8880}, {9000, 8100}}},
	{Name: "Red Side Mid Inner Tower", Polygon: []Point{{10320, 9450}, {9450, 10110}, {10020, 10650}, {10860, 10020}}},
	{Name: "Red Side Mid Cross", Polygon: []Point{{9540, 8640}, {8640, 9360}, {9420, 10110}, {10320, 9420}}},
	{Name: "Bot Lane Brush Middle", Polygon: []Point{{13380, 1560}, {12870, 1980}, {13260, 2340}, {13740, 1890}}},
	{Name: "Bot Lane Brush Left", Polygon: []Point{{13230, 960}, {12180, 1290}, {12630, 1740}, {13140, 1320}}},
	{Name: "Bot Lane Brush Right", Polygon: []Point{{13890, 2220}, {13470, 2580}, {13920, 3030}, {14130, 2970}}},
	{Name: "Bot Lane (Center) 1", Polygon: []Point{{13140, 1320}, {12660, 1740}, {12870, 1920}, {13350, 1530}}},
	{Name: "Bot Lane (Center) 2", Polygon: []Point{{13740, 1920}, {13260, 2340}, {13440, 2550}, {13920, 2130}}},
	{Name: "Bot Lane (Center) 3", Polygon: []Point{{12180, 1320}, {11700, 2340}, {12840, 3300}, {13860, 3030}}},
	{Name: "Bot Lane Alcove", Polygon: []Point{{13200, 180}, {13200, 1260}, {13920, 2160}, {14880, 1890}}},
	{Name: "Blue Side Bot Lane Outer Tower", Polygon: []Point{{10320, 630}, {10290, 1770}, {11070, 1770}, {11220, 630}}},
	{Name: "Blue Side Bot Lane Outside Outer Tower", Polygon: []Point{{11220, 630}, {11070, 1800}, {11760, 2220}, {12420, 780}}},
	{Name: "Blue Side Bot Lane Inner Tower", Polygon: []Point{{6480, 630}, {6480, 1770}, {7530, 1740}, {7620, 630}}},
	{Name: "Blue Side Bot Lane Area", Polygon: []Point{{7620, 630}, {7560, 1740}, {10230, 1710}, {10290, 630}}},
	{Name: "Red Side Bot Lane Outer Tower", Polygon: []Point{{14400, 4050}, {13200, 4140}, {13260, 5100}, {14400, 5040}}},
	{Name: "Red Side Bot Lane Outside Outer Tower", Polygon: []Point{{12870, 3330}, {13140, 4110}, {14400, 4050}, {14130, 3000}}},
	{Name: "Red Side Bot Lane Inner Tower", Polygon: []Point{{13230, 7770}, {13260, 8880}, {14340, 8850}, {14370, 7710}}},
	{Name: "Red Side Bot Lane Area", Polygon: []Point{{13230, 5130}, {13230, 7740}, {14370, 7710}, {14400, 5040}}},
	{Name: "Top Lane Brush Middle", Polygon: []Point{{1770, 12750}, {1260, 13170}, {1620, 13560}, {2130, 13140}}},
	{Name: "Top Lane Brush Right", Polygon: []Point{{2340, 13320}, {1860, 13800}, {2670, 14130}, {2820, 13800}}},
	{Name: "Top Lane Brush Left", Polygon: []Point{{1080, 12090}, {870, 12150}, {1080, 12900}, {1530, 12540}}},
	{Name: "Top Lane (Center) 1", Polygon: []Point{{2130, 13140}, {1650, 13590}, {1860, 13770}, {2310, 13350}}},
	{Name: "Top Lane (Center) 2", Polygon: []Point{{1560, 12540}, {1080, 12960}, {1260, 13170}, {1710, 12750}}},
	{Name: "Top Lane (Center) 3", Polygon: []Point{{2160, 11820}, {1140, 12090}, {2820, 13800}, {3300, 12780}}},
	{Name: "Top Lane Alcove", Polygon: []Point{{1050, 12960}, {300, 13920}, {1980, 14760}, {1800, 13830}}},
	{Name: "Red Side Top Lane Outer Tower", Polygon: []Point{{4050, 13260}, {3900, 14250}, {4800, 14250}, {4830, 13260}}},
	{Name: "Red Side Top Lane Outside Outer Tower", Polygon: []Point{{3330, 12840}, {2700, 14160}, {3930, 14250}, {4080, 13230}}},
	{Name: "Red Side Top Lane Inner Tower", Polygon: []Point{{7590, 13290}, {7500, 14250}, {8640, 14250}, {8640, 13260}}},
	{Name: "Red Side Top Lane Area", Polygon: []Point{{4860, 13320}, {4830, 14250}, {7500, 14250}, {7560, 13290}}},
	{Name: "Blue Side Top Lane Outer Tower", Polygon: []Point{{600, 10200}, {630, 11190}, {1860, 11130}, {1740, 10140}}},
	{Name: "Blue Side Top Lane Outside Outer Tower", Polygon: []Point{{630, 11190}, {870, 12150}, {2130, 11820}, {1860, 11130}}},
	{Name: "Blue Side Top Lane Inner Tower", Polygon: []Point{{660, 6390}, {630, 7530}, {1770, 7470}, {1740, 6360}}},
	{Name: "Blue Side Top Lane Area", Polygon: []Point{{630, 7530}, {600, 10200}, {1770, 10110}, {1770, 7500}}},
	{Name: "Blue Side Base", Polygon: []Point{{0, 0}, {0, 5100}, {1770, 5280}, {3810, 4620}, {4500, 3960}, {5220, 1830}, {5190, 0}}},
	{Name: "Blue Side Top Inhib Entrance", Polygon: []Point{{5220, 630}, {5220, 1800}, {6480, 1770}, {6480, 630}}},
	{Name: "Blue Side Mid Inhib Entrance", Polygon: []Point{{3750, 4650}, {4110, 5040}, {4950, 4320}, {4500, 3990}}},
	{Name: "Blue Side Bot Inhib Entrance", Polygon: []Point{{690, 5190}, {660, 6390}, {1740, 6330}, {1740, 5280}}},
	{Name: "Red Side Base", Polygon: []Point{{15000, 15000}, {9840, 15000}, {9810, 13230}, {10530, 11040}, {11250, 10410}, {13290, 9750}, {15000, 9930}}},
	{Name: "Red Side Top Inhib Entrance", Polygon: []Point{{9810, 13230}, {8640, 13260}, {8640, 14250}, {9810, 14250}}},
	{Name: "Red Side Mid Inhib Entrance", Polygon: []Point{{10890, 10020}, {10020, 10680}, {10500, 11040}, {11250, 10410}}},
	{Name: "Red Side Bot Inhib Entrance", Polygon: []Point{{13260, 8880}, {13290, 9750}, {14340, 9840}, {14340, 8850}}},
}
