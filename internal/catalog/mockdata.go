package catalog

// Hard-coded stand-in for the field data warehouse. Sources, columns and rows
// stay in declaration order; the service hands out copies only.

var mockSources = []DataSource{
	{ID: "wells_table", Name: "Wells Performance Data", Kind: KindTable},
	{ID: "production_table", Name: "Monthly Production Records", Kind: KindTable},
	{ID: "maintenance_table", Name: "Maintenance History", Kind: KindTable},
	{ID: "sensors_api", Name: "Real-time Sensor Data", Kind: KindAPI},
	{ID: "efficiency_table", Name: "Efficiency Metrics", Kind: KindTable},
	{ID: "alerts_table", Name: "System Alerts & Warnings", Kind: KindTable},
	{ID: "revenue_table", Name: "Revenue & Financial Data", Kind: KindTable},
}

var mockColumns = map[string][]DataColumn{
	"wells_table": {
		{Name: "wellId", Type: ColString, Sample: "WELL-001"},
		{Name: "wellName", Type: ColString, Sample: "Alpha Site"},
		{Name: "status", Type: ColString, Sample: "Active"},
		{Name: "oilRate", Type: ColNumber, Sample: 850},
		{Name: "gasRate", Type: ColNumber, Sample: 1200},
		{Name: "waterRate", Type: ColNumber, Sample: 150},
		{Name: "pressure", Type: ColNumber, Sample: 2450},
		{Name: "temperature", Type: ColNumber, Sample: 185},
		{Name: "efficiency", Type: ColNumber, Sample: 92},
		{Name: "lastMaintenance", Type: ColDate, Sample: "2024-01-15"},
		{Name: "latitude", Type: ColNumber, Sample: 29.7604},
		{Name: "longitude", Type: ColNumber, Sample: -95.3698},
	},
	"production_table": {
		{Name: "month", Type: ColString, Sample: "January"},
		{Name: "monthNumber", Type: ColNumber, Sample: 1},
		{Name: "year", Type: ColNumber, Sample: 2024},
		{Name: "oil", Type: ColNumber, Sample: 45000},
		{Name: "gas", Type: ColNumber, Sample: 32000},
		{Name: "water", Type: ColNumber, Sample: 12000},
		{Name: "totalProduction", Type: ColNumber, Sample: 89000},
		{Name: "revenue", Type: ColNumber, Sample: 2850000},
		{Name: "date", Type: ColDate, Sample: "2024-01-31"},
	},
	"maintenance_table": {
		{Name: "maintenanceId", Type: ColString, Sample: "MNT-001"},
		{Name: "wellId", Type: ColString, Sample: "WELL-001"},
		{Name: "type", Type: ColString, Sample: "Scheduled"},
		{Name: "description", Type: ColString, Sample: "Pump replacement"},
		{Name: "cost", Type: ColNumber, Sample: 15000},
		{Name: "duration", Type: ColNumber, Sample: 4},
		{Name: "technician", Type: ColString, Sample: "John Smith"},
		{Name: "completedDate", Type: ColDate, Sample: "2024-01-20"},
		{Name: "status", Type: ColString, Sample: "Completed"},
	},
	"sensors_api": {
		{Name: "sensorId", Type: ColString, Sample: "SENSOR-001"},
		{Name: "wellId", Type: ColString, Sample: "WELL-001"},
		{Name: "reading", Type: ColNumber, Sample: 2350},
		{Name: "unit", Type: ColString, Sample: "PSI"},
		{Name: "timestamp", Type: ColDate, Sample: "2024-02-11T10:30:00Z"},
		{Name: "isNormal", Type: ColBoolean, Sample: true},
	},
	"efficiency_table": {
		{Name: "wellId", Type: ColString, Sample: "WELL-001"},
		{Name: "date", Type: ColDate, Sample: "2024-02-11"},
		{Name: "efficiencyPercent", Type: ColNumber, Sample: 87.5},
		{Name: "uptimeHours", Type: ColNumber, Sample: 720},
		{Name: "downtimeHours", Type: ColNumber, Sample: 24},
		{Name: "productionTarget", Type: ColNumber, Sample: 1000},
		{Name: "actualProduction", Type: ColNumber, Sample: 875},
	},
	"alerts_table": {
		{Name: "alertId", Type: ColString, Sample: "ALERT-001"},
		{Name: "wellId", Type: ColString, Sample: "WELL-003"},
		{Name: "severity", Type: ColString, Sample: "Warning"},
		{Name: "message", Type: ColString, Sample: "Pressure below threshold"},
		{Name: "timestamp", Type: ColDate, Sample: "2024-02-11T09:15:00Z"},
		{Name: "acknowledged", Type: ColBoolean, Sample: false},
	},
	"revenue_table": {
		{Name: "month", Type: ColString, Sample: "January"},
		{Name: "oilRevenue", Type: ColNumber, Sample: 2500000},
		{Name: "gasRevenue", Type: ColNumber, Sample: 350000},
		{Name: "totalRevenue", Type: ColNumber, Sample: 2850000},
		{Name: "operatingCost", Type: ColNumber, Sample: 850000},
		{Name: "netProfit", Type: ColNumber, Sample: 2000000},
		{Name: "profitMargin", Type: ColNumber, Sample: 70.18},
	},
}

var mockRows = map[string][]Row{
	"wells_table": {
		{"wellId": "WELL-001", "wellName": "Alpha Site", "status": "Active", "oilRate": 850, "gasRate": 1200, "waterRate": 150, "pressure": 2450, "temperature": 185, "efficiency": 92, "lastMaintenance": "2024-01-15", "latitude": 29.7604, "longitude": -95.3698},
		{"wellId": "WELL-002", "wellName": "Beta Site", "status": "Active", "oilRate": 920, "gasRate": 1350, "waterRate": 180, "pressure": 2380, "temperature": 178, "efficiency": 88, "lastMaintenance": "2024-01-20", "latitude": 29.7854, "longitude": -95.4012},
		{"wellId": "WELL-003", "wellName": "Gamma Site", "status": "Warning", "oilRate": 650, "gasRate": 980, "waterRate": 220, "pressure": 2100, "temperature": 192, "efficiency": 75, "lastMaintenance": "2023-12-10", "latitude": 29.7234, "longitude": -95.3456},
		{"wellId": "WELL-004", "wellName": "Delta Site", "status": "Active", "oilRate": 1050, "gasRate": 1480, "waterRate": 140, "pressure": 2520, "temperature": 182, "efficiency": 95, "lastMaintenance": "2024-02-01", "latitude": 29.8012, "longitude": -95.3890},
		{"wellId": "WELL-005", "wellName": "Epsilon Site", "status": "Offline", "oilRate": 0, "gasRate": 0, "waterRate": 0, "pressure": 0, "temperature": 0, "efficiency": 0, "lastMaintenance": "2024-01-05", "latitude": 29.7445, "longitude": -95.4123},
	},
	"production_table": {
		{"month": "January", "monthNumber": 1, "year": 2024, "oil": 45000, "gas": 32000, "water": 12000, "totalProduction": 89000, "revenue": 2850000, "date": "2024-01-31"},
		{"month": "February", "monthNumber": 2, "year": 2024, "oil": 48000, "gas": 34000, "water": 13000, "totalProduction": 95000, "revenue": 3050000, "date": "2024-02-29"},
		{"month": "March", "monthNumber": 3, "year": 2024, "oil": 52000, "gas": 36000, "water": 14000, "totalProduction": 102000, "revenue": 3350000, "date": "2024-03-31"},
		{"month": "April", "monthNumber": 4, "year": 2024, "oil": 49000, "gas": 35000, "water": 15000, "totalProduction": 99000, "revenue": 3150000, "date": "2024-04-30"},
		{"month": "May", "monthNumber": 5, "year": 2024, "oil": 55000, "gas": 38000, "water": 14500, "totalProduction": 107500, "revenue": 3550000, "date": "2024-05-31"},
		{"month": "June", "monthNumber": 6, "year": 2024, "oil": 58000, "gas": 40000, "water": 16000, "totalProduction": 114000, "revenue": 3750000, "date": "2024-06-30"},
	},
	"maintenance_table": {
		{"maintenanceId": "MNT-001", "wellId": "WELL-001", "type": "Scheduled", "description": "Pump replacement", "cost": 15000, "duration": 4, "technician": "John Smith", "completedDate": "2024-01-20", "status": "Completed"},
		{"maintenanceId": "MNT-002", "wellId": "WELL-002", "type": "Emergency", "description": "Valve repair", "cost": 8500, "duration": 2, "technician": "Jane Doe", "completedDate": "2024-01-25", "status": "Completed"},
		{"maintenanceId": "MNT-003", "wellId": "WELL-003", "type": "Scheduled", "description": "Inspection", "cost": 3000, "duration": 1, "technician": "Bob Johnson", "completedDate": "2024-02-05", "status": "Completed"},
		{"maintenanceId": "MNT-004", "wellId": "WELL-005", "type": "Emergency", "description": "System failure", "cost": 45000, "duration": 8, "technician": "John Smith", "completedDate": "2024-02-10", "status": "In Progress"},
	},
	"sensors_api": {
		{"sensorId": "SENSOR-001", "wellId": "WELL-001", "reading": 2350, "unit": "PSI", "timestamp": "2024-02-11T10:30:00Z", "isNormal": true},
		{"sensorId": "SENSOR-002", "wellId": "WELL-001", "reading": 185, "unit": "F", "timestamp": "2024-02-11T10:30:00Z", "isNormal": true},
		{"sensorId": "SENSOR-003", "wellId": "WELL-002", "reading": 2380, "unit": "PSI", "timestamp": "2024-02-11T10:30:00Z", "isNormal": true},
		{"sensorId": "SENSOR-004", "wellId": "WELL-003", "reading": 2100, "unit": "PSI", "timestamp": "2024-02-11T10:30:00Z", "isNormal": false},
	},
	"efficiency_table": {
		{"wellId": "WELL-001", "date": "2024-02-11", "efficiencyPercent": 92, "uptimeHours": 720, "downtimeHours": 24, "productionTarget": 900, "actualProduction": 828},
		{"wellId": "WELL-002", "date": "2024-02-11", "efficiencyPercent": 88, "uptimeHours": 710, "downtimeHours": 34, "productionTarget": 950, "actualProduction": 836},
		{"wellId": "WELL-003", "date": "2024-02-11", "efficiencyPercent": 75, "uptimeHours": 680, "downtimeHours": 64, "productionTarget": 800, "actualProduction": 600},
		{"wellId": "WELL-004", "date": "2024-02-11", "efficiencyPercent": 95, "uptimeHours": 730, "downtimeHours": 14, "productionTarget": 1100, "actualProduction": 1045},
	},
	"alerts_table": {
		{"alertId": "ALERT-001", "wellId": "WELL-003", "severity": "Warning", "message": "Pressure below threshold", "timestamp": "2024-02-11T09:15:00Z", "acknowledged": false},
		{"alertId": "ALERT-002", "wellId": "WELL-005", "severity": "Critical", "message": "Well offline - maintenance required", "timestamp": "2024-02-11T08:30:00Z", "acknowledged": true},
		{"alertId": "ALERT-003", "wellId": "WELL-001", "severity": "Info", "message": "Scheduled maintenance due", "timestamp": "2024-02-11T07:00:00Z", "acknowledged": true},
	},
	"revenue_table": {
		{"month": "January", "oilRevenue": 2500000, "gasRevenue": 350000, "totalRevenue": 2850000, "operatingCost": 850000, "netProfit": 2000000, "profitMargin": 70.18},
		{"month": "February", "oilRevenue": 2700000, "gasRevenue": 380000, "totalRevenue": 3080000, "operatingCost": 920000, "netProfit": 2160000, "profitMargin": 70.13},
		{"month": "March", "oilRevenue": 2950000, "gasRevenue": 410000, "totalRevenue": 3360000, "operatingCost": 980000, "netProfit": 2380000, "profitMargin": 70.83},
		{"month": "April", "oilRevenue": 2750000, "gasRevenue": 395000, "totalRevenue": 3145000, "operatingCost": 940000, "netProfit": 2205000, "profitMargin": 70.11},
		{"month": "May", "oilRevenue": 3100000, "gasRevenue": 430000, "totalRevenue": 3530000, "operatingCost": 1050000, "netProfit": 2480000, "profitMargin": 70.25},
		{"month": "June", "oilRevenue": 3250000, "gasRevenue": 450000, "totalRevenue": 3700000, "operatingCost": 1100000, "netProfit": 2600000, "profitMargin": 70.27},
	},
}
