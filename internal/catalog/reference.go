package catalog

import "github.com/schollz/freqchart/internal/types"

func alloc(start, end float64, name string, service types.ServiceCategory) types.Allocation {
	return types.Allocation{
		Start:   start,
		End:     end,
		Name:    name,
		Service: service,
		Color:   CategoryColor(service),
	}
}

// referenceBands is the built-in allocation table. Frequencies are in MHz.
func referenceBands() []types.Band {
	return []types.Band{
		{
			ID:              "hf",
			DisplayName:     "HF",
			RangeLabel:      "3 - 30 MHz",
			MinFreq:         3,
			MaxFreq:         30,
			UsesDescription: "Shortwave broadcasting, amateur radio, maritime and aeronautical long-range communication",
			Allocations: []types.Allocation{
				alloc(3.0, 3.5, "Aeronautical Mobile", types.ServiceAeronautical),
				alloc(3.5, 4.0, "80m Amateur Band", types.ServiceAmateur),
				alloc(4.0, 5.0, "Maritime Mobile", types.ServiceMaritime),
				alloc(5.0, 5.9, "Fixed & Mobile", types.ServiceFixed),
				alloc(5.9, 6.2, "49m Broadcasting", types.ServiceBroadcasting),
				alloc(6.2, 7.0, "Maritime Mobile", types.ServiceMaritime),
				alloc(7.0, 7.3, "40m Amateur Band", types.ServiceAmateur),
				alloc(7.3, 7.45, "41m Broadcasting", types.ServiceBroadcasting),
				alloc(7.45, 9.4, "Fixed & Mobile", types.ServiceFixed),
				alloc(9.4, 9.9, "31m Broadcasting", types.ServiceBroadcasting),
				alloc(9.9, 10.1, "Aeronautical Mobile", types.ServiceAeronautical),
				alloc(10.1, 10.15, "30m Amateur Band", types.ServiceAmateur),
				alloc(10.15, 11.6, "Fixed", types.ServiceFixed),
				alloc(11.6, 12.1, "25m Broadcasting", types.ServiceBroadcasting),
				alloc(12.1, 14.0, "Maritime Mobile", types.ServiceMaritime),
				alloc(14.0, 14.35, "20m Amateur Band", types.ServiceAmateur),
				alloc(14.35, 15.0, "Fixed", types.ServiceFixed),
				alloc(15.0, 15.1, "Standard Frequency & Time Signal", types.ServiceTimeSignal),
				alloc(15.1, 15.8, "19m Broadcasting", types.ServiceBroadcasting),
				alloc(15.8, 18.068, "Fixed", types.ServiceFixed),
				alloc(18.068, 18.168, "17m Amateur Band", types.ServiceAmateur),
				alloc(18.168, 21.0, "Fixed & Mobile", types.ServiceFixed),
				alloc(21.0, 21.45, "15m Amateur Band", types.ServiceAmateur),
				alloc(21.45, 21.85, "13m Broadcasting", types.ServiceBroadcasting),
				alloc(21.85, 24.89, "Fixed & Aeronautical", types.ServiceFixed),
				alloc(24.89, 24.99, "12m Amateur Band", types.ServiceAmateur),
				alloc(24.99, 26.96, "Fixed & Mobile", types.ServiceFixed),
				alloc(26.96, 27.41, "Citizens Band (CB)", types.ServiceMobile),
				alloc(27.41, 28.0, "Fixed & Mobile", types.ServiceFixed),
				alloc(28.0, 29.7, "10m Amateur Band", types.ServiceAmateur),
				alloc(29.7, 30.0, "Fixed & Mobile", types.ServiceFixed),
			},
		},
		{
			ID:              "vhf",
			DisplayName:     "VHF",
			RangeLabel:      "30 - 300 MHz",
			MinFreq:         30,
			MaxFreq:         300,
			UsesDescription: "FM radio, television, airband, marine radio, land mobile and amateur radio",
			Allocations: []types.Allocation{
				alloc(30, 50, "Land Mobile", types.ServiceMobile),
				alloc(50, 54, "6m Amateur Band", types.ServiceAmateur),
				alloc(54, 72, "TV Broadcasting (Ch 2-4)", types.ServiceBroadcasting),
				alloc(72, 76, "Fixed & Mobile", types.ServiceFixed),
				alloc(76, 88, "TV Broadcasting (Ch 5-6)", types.ServiceBroadcasting),
				alloc(88, 108, "FM Broadcast Radio", types.ServiceBroadcasting),
				alloc(108, 118, "Aeronautical Radionavigation", types.ServiceRadionavigation),
				alloc(118, 137, "Airband (Voice)", types.ServiceAeronautical),
				alloc(137, 138, "Weather Satellites", types.ServiceSatellite),
				alloc(138, 144, "Government & Military", types.ServiceGovernment),
				alloc(144, 148, "2m Amateur Band", types.ServiceAmateur),
				alloc(148, 156, "Land Mobile", types.ServiceMobile),
				alloc(156, 162.025, "Marine VHF", types.ServiceMaritime),
				alloc(162.025, 174, "Public Safety & Weather Radio", types.ServiceMobile),
				alloc(174, 216, "TV Broadcasting (Ch 7-13)", types.ServiceBroadcasting),
				alloc(216, 222, "Fixed & Mobile", types.ServiceFixed),
				alloc(222, 225, "1.25m Amateur Band", types.ServiceAmateur),
				alloc(225, 300, "Military Aviation", types.ServiceGovernment),
			},
		},
		{
			ID:              "uhf",
			DisplayName:     "UHF",
			RangeLabel:      "300 MHz - 3 GHz",
			MinFreq:         300,
			MaxFreq:         3000,
			UsesDescription: "Television, cellular networks, GNSS, Wi-Fi, Bluetooth, radar and amateur radio",
			Allocations: []types.Allocation{
				alloc(300, 406, "Government & Military", types.ServiceGovernment),
				alloc(406, 406.1, "COSPAS-SARSAT Distress", types.ServiceSatellite),
				alloc(406.1, 420, "Fixed & Mobile", types.ServiceFixed),
				alloc(420, 450, "70cm Amateur Band", types.ServiceAmateur),
				alloc(450, 470, "Land Mobile (Business)", types.ServiceMobile),
				alloc(470, 608, "TV Broadcasting (UHF)", types.ServiceBroadcasting),
				alloc(608, 614, "Radio Astronomy", types.ServiceRadioAstronomy),
				alloc(614, 698, "Mobile Broadband (600 MHz)", types.ServiceMobile),
				alloc(698, 806, "Mobile Broadband (700 MHz)", types.ServiceMobile),
				alloc(806, 902, "Cellular & Trunked Radio", types.ServiceMobile),
				alloc(902, 928, "33cm ISM / Amateur", types.ServiceISM),
				alloc(928, 960, "Fixed & Mobile", types.ServiceFixed),
				alloc(960, 1215, "Aeronautical Radionavigation (DME)", types.ServiceRadionavigation),
				alloc(1215, 1240, "GNSS (GPS L2)", types.ServiceRadionavigation),
				alloc(1240, 1300, "23cm Amateur Band", types.ServiceAmateur),
				alloc(1300, 1350, "Aeronautical Radar", types.ServiceRadionavigation),
				alloc(1350, 1400, "Fixed & Mobile", types.ServiceFixed),
				alloc(1400, 1427, "Hydrogen Line (Radio Astronomy)", types.ServiceRadioAstronomy),
				alloc(1427, 1559, "Mobile Satellite", types.ServiceSatellite),
				alloc(1559, 1610, "GNSS (GPS L1, Galileo)", types.ServiceRadionavigation),
				alloc(1610, 1710, "Mobile Satellite & Meteorological", types.ServiceSatellite),
				alloc(1710, 2200, "Cellular (AWS/PCS)", types.ServiceMobile),
				alloc(2200, 2400, "Space Operations & Telemetry", types.ServiceSatellite),
				alloc(2400, 2500, "2.4 GHz ISM (Wi-Fi, Bluetooth)", types.ServiceISM),
				alloc(2500, 2690, "Broadband Radio Service", types.ServiceMobile),
				alloc(2690, 2700, "Radio Astronomy", types.ServiceRadioAstronomy),
				alloc(2700, 3000, "Weather & ATC Radar", types.ServiceRadionavigation),
			},
		},
		{
			ID:              "shf",
			DisplayName:     "SHF",
			RangeLabel:      "3 - 30 GHz",
			MinFreq:         3000,
			MaxFreq:         30000,
			UsesDescription: "Satellite communication, radar, point-to-point links, 5 GHz Wi-Fi and 5G mmWave",
			Allocations: []types.Allocation{
				alloc(3000, 3700, "Radiolocation", types.ServiceRadionavigation),
				alloc(3700, 4200, "C-Band Satellite Downlink", types.ServiceSatellite),
				alloc(4200, 4400, "Radio Altimeters", types.ServiceAeronautical),
				alloc(4400, 5150, "Fixed & Mobile", types.ServiceFixed),
				alloc(5150, 5925, "5 GHz Wi-Fi / ISM", types.ServiceISM),
				alloc(5925, 7125, "6 GHz Fixed & Wi-Fi 6E", types.ServiceFixed),
				alloc(7125, 8500, "Government Fixed & Satellite", types.ServiceGovernment),
				alloc(8500, 10000, "X-Band Radar", types.ServiceRadionavigation),
				alloc(10000, 10500, "3cm Amateur Band", types.ServiceAmateur),
				alloc(10500, 11700, "Fixed & Satellite", types.ServiceFixed),
				alloc(11700, 12700, "Ku-Band DBS Downlink", types.ServiceSatellite),
				alloc(12700, 17300, "Fixed & Satellite Uplink", types.ServiceSatellite),
				alloc(17300, 21200, "Ka-Band Satellite Downlink", types.ServiceSatellite),
				alloc(21200, 24000, "Fixed & Mobile", types.ServiceFixed),
				alloc(24000, 24250, "1.2cm Amateur / ISM", types.ServiceISM),
				alloc(24250, 27500, "5G mmWave (n258)", types.ServiceMobile),
				alloc(27500, 30000, "Ka-Band Satellite Uplink", types.ServiceSatellite),
			},
		},
	}
}
