package sources

import "github.com/keebscout/keebscout/internal/domain/entities"

// Curated seed datasets. These mirror real listings from each retailer and
// back the seed/auto modes so the pipeline works without API keys.

var amazonSeed = []entities.SourceRecord{
	{"product_title": "Kinesis Advantage360 Professional", "brand": "Kinesis", "price_usd": 449.0, "rating_avg": 4.4, "rating_count": 312, "layout_size": "Split Contoured", "switch_type": "Cherry MX Brown", "switch_brand": "Cherry", "connectivity": "Bluetooth + USB-C", "hot_swappable": true, "programmable": "ZMK (Open Source)", "ergonomic_features": "Split, Tented, Contoured keywells, Thumb clusters", "product_url": "https://www.amazon.com/dp/B0BCHMGZMD", "category": "Premium Split"},
	{"product_title": "Kinesis Advantage360 (Wired)", "brand": "Kinesis", "price_usd": 399.0, "rating_avg": 4.3, "rating_count": 198, "layout_size": "Split Contoured", "switch_type": "Cherry MX Brown", "switch_brand": "Cherry", "connectivity": "USB-C", "hot_swappable": true, "programmable": "ZMK (Open Source)", "ergonomic_features": "Split, Tented, Contoured keywells, Thumb clusters", "product_url": "https://www.amazon.com/dp/B0BCHFHX6V", "category": "Premium Split"},
	{"product_title": "Keychron Q10 Pro", "brand": "Keychron", "price_usd": 219.0, "rating_avg": 4.5, "rating_count": 340, "layout_size": "Alice 75%", "switch_type": "Gateron Jupiter Brown", "switch_brand": "Gateron", "connectivity": "Bluetooth + USB-C", "hot_swappable": true, "programmable": "QMK/VIA", "ergonomic_features": "Alice curved split, Knob", "product_url": "https://www.amazon.com/Keychron-Q10-Pro", "category": "Alice"},
	{"product_title": "Keychron Q11 QMK Split", "brand": "Keychron", "price_usd": 209.0, "rating_avg": 4.4, "rating_count": 280, "layout_size": "Split 75%", "switch_type": "Gateron G Pro Brown", "switch_brand": "Gateron", "connectivity": "USB-C (Wired)", "hot_swappable": true, "programmable": "QMK/VIA", "ergonomic_features": "Physical split, Knob, Full aluminum", "product_url": "https://www.amazon.com/dp/B0C9Q7S8CB", "category": "Split"},
	{"product_title": "Feker Alice98", "brand": "Feker/MechLands", "price_usd": 109.0, "rating_avg": 4.3, "rating_count": 380, "layout_size": "Alice 98%", "switch_type": "Various (Hot-swap)", "switch_brand": "Various", "connectivity": "USB-C (Wired)", "hot_swappable": true, "programmable": "VIA", "ergonomic_features": "Alice split with numpad, Knob, 5-layer padding", "product_url": "https://www.amazon.com/dp/B0DF2CZZ8Z", "category": "Alice"},
	{"product_title": "Kinesis mWave Ergonomic Keyboard (Mac)", "brand": "Kinesis", "price_usd": 199.0, "rating_avg": 4.3, "rating_count": 98, "layout_size": "Wave Full", "switch_type": "Gateron Low-Profile Brown", "switch_brand": "Gateron", "connectivity": "Bluetooth + USB-C", "hot_swappable": false, "programmable": "Kinesis SmartSet", "ergonomic_features": "Tented center, Negative tilt, Padded wrist rest, Wave layout", "product_url": "https://www.amazon.com/dp/B0DYLB3YBJ", "category": "Wave/Ergo"},
	{"product_title": "Logitech Ergo K860", "brand": "Logitech", "price_usd": 129.0, "rating_avg": 4.4, "rating_count": 12500, "layout_size": "Wave Split Full", "switch_type": "Membrane (not mechanical)", "switch_brand": "Logitech", "connectivity": "Bluetooth + USB Receiver", "hot_swappable": false, "programmable": "Logi Options+", "ergonomic_features": "Split wave, Tented, Padded wrist rest, Negative tilt", "product_url": "https://www.amazon.com/Logitech-Wireless-Ergonomic-Keyboard-Wrist/dp/B07ZWK2TQT", "category": "Wave/Ergo"},
	{"product_title": "Microsoft Sculpt Ergonomic Keyboard", "brand": "Microsoft", "price_usd": 44.0, "rating_avg": 4.3, "rating_count": 18000, "layout_size": "Split Dome Full", "switch_type": "Membrane", "switch_brand": "Microsoft", "connectivity": "USB Receiver", "hot_swappable": false, "programmable": "No", "ergonomic_features": "Split dome, Tented, Padded wrist rest, Separate numpad", "product_url": "https://www.amazon.com/Microsoft-Ergonomic-Keyboard-Business-5KV-00001/dp/B00CYX26BC", "category": "Budget Ergo"},
	{"product_title": "NuPhy Air75 V2", "brand": "NuPhy", "price_usd": 129.0, "rating_avg": 4.5, "rating_count": 1200, "layout_size": "Standard 75%", "switch_type": "NuPhy Low-Profile", "switch_brand": "NuPhy", "connectivity": "Bluetooth + 2.4GHz + USB-C", "hot_swappable": true, "programmable": "Software", "ergonomic_features": "Low-profile, Lightweight, Portable", "product_url": "https://www.amazon.com/NuPhy-Air75-V2", "category": "Low-Profile"},
	{"product_title": "Cloud Nine ErgoTKL Split Keyboard", "brand": "Cloud Nine", "price_usd": 169.0, "rating_avg": 4.2, "rating_count": 230, "layout_size": "Split TKL", "switch_type": "Cherry MX Brown", "switch_brand": "Cherry", "connectivity": "USB", "hot_swappable": false, "programmable": "Software", "ergonomic_features": "Split, Padded wrist rest, Adjustable splay", "product_url": "https://www.amazon.com/Cloud-Nine-ErgoTKL", "category": "Split"},
	{"product_title": "EPOMAKER Alice66", "brand": "EPOMAKER", "price_usd": 89.0, "rating_avg": 4.2, "rating_count": 320, "layout_size": "Alice 65%", "switch_type": "Various (Hot-swap)", "switch_brand": "Various", "connectivity": "Bluetooth + 2.4GHz + USB-C", "hot_swappable": true, "programmable": "Software", "ergonomic_features": "Alice layout, Wireless, Budget", "product_url": "https://www.amazon.com/EPOMAKER-Alice66", "category": "Alice"},
	{"product_title": "Perixx PERIBOARD-535 Ergonomic", "brand": "Perixx", "price_usd": 69.0, "rating_avg": 4.1, "rating_count": 580, "layout_size": "Split Wave Full", "switch_type": "Kailh Brown", "switch_brand": "Kailh", "connectivity": "USB", "hot_swappable": false, "programmable": "No", "ergonomic_features": "Split wave, Tented, Low-profile keycaps, Wrist rest", "product_url": "https://www.amazon.com/Perixx-PERIBOARD-535", "category": "Budget Ergo"},
	{"product_title": "X-Bows Nature Ergonomic", "brand": "X-Bows", "price_usd": 139.0, "rating_avg": 4.0, "rating_count": 190, "layout_size": "Cross-linear TKL", "switch_type": "Gateron Brown", "switch_brand": "Gateron", "connectivity": "USB-C", "hot_swappable": true, "programmable": "Software", "ergonomic_features": "Cross-linear layout, Reduced finger travel, Thumb cluster", "product_url": "https://www.amazon.com/X-Bows-Nature", "category": "Ergonomic"},
	{"product_title": "Kinesis Freestyle2 for PC", "brand": "Kinesis", "price_usd": 89.0, "rating_avg": 4.1, "rating_count": 1100, "layout_size": "Split Flat Full", "switch_type": "Membrane", "switch_brand": "Kinesis", "connectivity": "USB", "hot_swappable": false, "programmable": "SmartSet", "ergonomic_features": "Split (20in), VIP3 tenting kit, Splay adjustable", "product_url": "https://www.amazon.com/Kinesis-Freestyle2-Ergonomic-Keyboard-Separation/dp/B0089ZLENA", "category": "Split"},
	{"product_title": "GMK70 Alice", "brand": "GMK", "price_usd": 79.0, "rating_avg": 4.1, "rating_count": 450, "layout_size": "Alice 70%", "switch_type": "Various (Hot-swap)", "switch_brand": "Various", "connectivity": "Bluetooth + 2.4GHz + USB-C", "hot_swappable": true, "programmable": "Software", "ergonomic_features": "Alice layout, Budget-friendly entry", "product_url": "https://www.amazon.com/GMK70-Alice", "category": "Alice"},
	{"product_title": "IQUNIX Magi96 Low-Profile", "brand": "IQUNIX", "price_usd": 199.0, "rating_avg": 4.3, "rating_count": 150, "layout_size": "Standard 96%", "switch_type": "Low-Profile", "switch_brand": "IQUNIX", "connectivity": "Bluetooth + USB-C", "hot_swappable": true, "programmable": "Software", "ergonomic_features": "Ultra-slim 11mm, Aircraft aluminum, Low-profile", "product_url": "https://www.amazon.com/IQUNIX-Magi96", "category": "Low-Profile"},
}

var bestBuySeed = []entities.SourceRecord{
	{"product_title": "Logitech Ergo K860", "brand": "Logitech", "price_usd": 129.0, "rating_avg": 4.4, "rating_count": 890, "layout_size": "Wave Split Full", "switch_type": "Membrane (not mechanical)", "switch_brand": "Logitech", "connectivity": "Bluetooth + USB Receiver", "hot_swappable": false, "programmable": "Logi Options+", "ergonomic_features": "Split wave, Tented, Padded wrist rest, Negative tilt", "product_url": "https://www.bestbuy.com/site/logitech-ergo-k860/6395346.p", "category": "Wave/Ergo"},
	{"product_title": "Logitech MX Keys S", "brand": "Logitech", "price_usd": 109.0, "rating_avg": 4.6, "rating_count": 2100, "layout_size": "Standard Full", "switch_type": "Low-Profile Membrane", "switch_brand": "Logitech", "connectivity": "Bluetooth + USB Receiver", "hot_swappable": false, "programmable": "Logi Options+", "ergonomic_features": "Low-profile, Backlit, Multi-device", "product_url": "https://www.bestbuy.com/site/logitech-mx-keys-s/6539505.p", "category": "Standard"},
	{"product_title": "Corsair K70 RGB Pro", "brand": "Corsair", "price_usd": 159.0, "rating_avg": 4.5, "rating_count": 650, "layout_size": "Standard Full", "switch_type": "Cherry MX Red", "switch_brand": "Cherry", "connectivity": "USB", "hot_swappable": false, "programmable": "iCUE", "ergonomic_features": "Wrist rest, Standard layout", "product_url": "https://www.bestbuy.com/site/corsair-k70-rgb-pro/6502560.p", "category": "Gaming"},
	{"product_title": "Microsoft Ergonomic Keyboard", "brand": "Microsoft", "price_usd": 59.0, "rating_avg": 4.2, "rating_count": 1500, "layout_size": "Split Wave Full", "switch_type": "Membrane", "switch_brand": "Microsoft", "connectivity": "USB", "hot_swappable": false, "programmable": "No", "ergonomic_features": "Split, Tented, Padded wrist rest", "product_url": "https://www.bestbuy.com/site/microsoft-ergonomic-keyboard/6378567.p", "category": "Budget Ergo"},
}

var walmartSeed = []entities.SourceRecord{
	{"product_title": "Kinesis Advantage360 Professional", "brand": "Kinesis", "price_usd": 529.0, "rating_avg": 4.4, "rating_count": 89, "layout_size": "Split Contoured", "switch_type": "Cherry MX Brown", "switch_brand": "Cherry", "connectivity": "Bluetooth + USB-C", "hot_swappable": true, "programmable": "ZMK (Open Source)", "ergonomic_features": "Split, Tented, Contoured keywells, Thumb clusters", "product_url": "https://www.walmart.com/ip/5607615601", "category": "Premium Split"},
	{"product_title": "Logitech Ergo K860", "brand": "Logitech", "price_usd": 119.0, "rating_avg": 4.5, "rating_count": 3200, "layout_size": "Wave Split Full", "switch_type": "Membrane (not mechanical)", "switch_brand": "Logitech", "connectivity": "Bluetooth + USB Receiver", "hot_swappable": false, "programmable": "Logi Options+", "ergonomic_features": "Split wave, Tented, Padded wrist rest, Negative tilt", "product_url": "https://www.walmart.com/ip/logitech-k860", "category": "Wave/Ergo"},
	{"product_title": "Microsoft Sculpt Ergonomic Keyboard", "brand": "Microsoft", "price_usd": 39.0, "rating_avg": 4.3, "rating_count": 5800, "layout_size": "Split Dome Full", "switch_type": "Membrane", "switch_brand": "Microsoft", "connectivity": "USB Receiver", "hot_swappable": false, "programmable": "No", "ergonomic_features": "Split dome, Tented, Padded wrist rest, Separate numpad", "product_url": "https://www.walmart.com/ip/microsoft-sculpt", "category": "Budget Ergo"},
	{"product_title": "Redragon K596 Vishnu TKL", "brand": "Redragon", "price_usd": 59.0, "rating_avg": 4.3, "rating_count": 410, "layout_size": "Standard TKL", "switch_type": "Redragon Brown", "switch_brand": "Redragon", "connectivity": "Bluetooth + USB-C", "hot_swappable": true, "programmable": "Software", "ergonomic_features": "Standard TKL, Wireless", "product_url": "https://www.walmart.com/ip/redragon-k596", "category": "Standard"},
}

// seedRecords clones seed entries for one source site, stamping the source
// and ship-to ZIP, so callers can never mutate the shared seed tables.
func seedRecords(seed []entities.SourceRecord, sourceSite string, req SearchRequest, filterByQuery bool) []entities.SourceRecord {
	max := req.MaxResults
	if max <= 0 {
		max = len(seed)
	}

	records := make([]entities.SourceRecord, 0, len(seed))
	for _, entry := range seed {
		if len(records) >= max {
			break
		}
		if filterByQuery {
			title, _ := entry["product_title"].(string)
			if !matchesQuery(req.Query, title) {
				continue
			}
		}

		rec := make(entities.SourceRecord, len(entry)+3)
		for k, v := range entry {
			rec[k] = v
		}
		rec["source_site"] = sourceSite
		rec["availability"] = "In Stock"
		rec["ship_to_zip"] = req.ShipToZip
		records = append(records, rec)
	}
	return records
}
