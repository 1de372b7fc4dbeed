package bodymap

import "painmap/pkg"

// frontRegions and backRegions are the clickable areas of the two diagrams,
// in drawing order.
var frontRegions = []Region{
	{ID: "front-head", Name: "Head", View: pkg.ViewFront, Shape: ellipse(100, 40, 25, 30)},
	{ID: "front-neck", Name: "Neck", View: pkg.ViewFront, Shape: rect(85, 70, 30, 20, 3)},
	{ID: "front-right-shoulder", Name: "Right shoulder", View: pkg.ViewFront, Shape: circle(70, 100, 12)},
	{ID: "front-left-shoulder", Name: "Left shoulder", View: pkg.ViewFront, Shape: circle(130, 100, 12)},
	{ID: "front-upper-chest", Name: "Upper chest", View: pkg.ViewFront, Shape: rect(75, 90, 50, 35, 8)},
	{ID: "front-mid-chest", Name: "Mid chest", View: pkg.ViewFront, Shape: rect(80, 125, 40, 30, 6)},
	{ID: "front-upper-abdomen", Name: "Upper abdomen", View: pkg.ViewFront, Shape: rect(80, 155, 40, 30, 6)},
	{ID: "front-lower-abdomen", Name: "Lower abdomen", View: pkg.ViewFront, Shape: rect(82, 185, 36, 35, 6)},
	{ID: "front-right-upper-arm", Name: "Right upper arm", View: pkg.ViewFront, Shape: rect(48, 100, 18, 60, 9)},
	{ID: "front-left-upper-arm", Name: "Left upper arm", View: pkg.ViewFront, Shape: rect(134, 100, 18, 60, 9)},
	{ID: "front-right-elbow", Name: "Right elbow", View: pkg.ViewFront, Shape: circle(57, 165, 8)},
	{ID: "front-left-elbow", Name: "Left elbow", View: pkg.ViewFront, Shape: circle(143, 165, 8)},
	{ID: "front-right-forearm", Name: "Right forearm", View: pkg.ViewFront, Shape: rect(49, 173, 16, 55, 8)},
	{ID: "front-left-forearm", Name: "Left forearm", View: pkg.ViewFront, Shape: rect(135, 173, 16, 55, 8)},
	{ID: "front-right-hand", Name: "Right hand", View: pkg.ViewFront, Shape: ellipse(57, 238, 10, 12)},
	{ID: "front-left-hand", Name: "Left hand", View: pkg.ViewFront, Shape: ellipse(143, 238, 10, 12)},
	{ID: "front-right-thigh", Name: "Right thigh", View: pkg.ViewFront, Shape: rect(82, 220, 16, 80, 8)},
	{ID: "front-left-thigh", Name: "Left thigh", View: pkg.ViewFront, Shape: rect(102, 220, 16, 80, 8)},
	{ID: "front-right-knee", Name: "Right knee", View: pkg.ViewFront, Shape: circle(90, 305, 10)},
	{ID: "front-left-knee", Name: "Left knee", View: pkg.ViewFront, Shape: circle(110, 305, 10)},
	{ID: "front-right-shin", Name: "Right shin", View: pkg.ViewFront, Shape: rect(83, 315, 14, 80, 7)},
	{ID: "front-left-shin", Name: "Left shin", View: pkg.ViewFront, Shape: rect(103, 315, 14, 80, 7)},
	{ID: "front-right-foot", Name: "Right foot", View: pkg.ViewFront, Shape: ellipse(90, 405, 12, 18)},
	{ID: "front-left-foot", Name: "Left foot", View: pkg.ViewFront, Shape: ellipse(110, 405, 12, 18)},
}

var backRegions = []Region{
	{ID: "back-head", Name: "Head (Back)", View: pkg.ViewBack, Shape: ellipse(100, 40, 25, 30)},
	{ID: "back-neck", Name: "Neck (Back)", View: pkg.ViewBack, Shape: rect(85, 70, 30, 25, 3)},
	{ID: "back-upper", Name: "Upper Back", View: pkg.ViewBack, Shape: rect(75, 95, 50, 40, 5)},
	{ID: "back-mid", Name: "Mid Back", View: pkg.ViewBack, Shape: rect(78, 135, 44, 35, 5)},
	{ID: "back-lower", Name: "Lower Back", View: pkg.ViewBack, Shape: rect(80, 170, 40, 35, 5)},
	{ID: "back-shoulder-right", Name: "Right Shoulder (Back)", View: pkg.ViewBack, Shape: ellipse(70, 105, 18, 15)},
	{ID: "back-shoulder-left", Name: "Left Shoulder (Back)", View: pkg.ViewBack, Shape: ellipse(130, 105, 18, 15)},
	{ID: "back-buttocks", Name: "Buttocks", View: pkg.ViewBack, Shape: ellipse(100, 220, 30, 25)},
	{ID: "back-upper-arm-right", Name: "Right Upper Arm (Back)", View: pkg.ViewBack, Shape: rect(45, 120, 18, 55, 9)},
	{ID: "back-upper-arm-left", Name: "Left Upper Arm (Back)", View: pkg.ViewBack, Shape: rect(137, 120, 18, 55, 9)},
	{ID: "back-elbow-right", Name: "Right Elbow (Back)", View: pkg.ViewBack, Shape: circle(54, 180, 10)},
	{ID: "back-elbow-left", Name: "Left Elbow (Back)", View: pkg.ViewBack, Shape: circle(146, 180, 10)},
	{ID: "back-forearm-right", Name: "Right Forearm (Back)", View: pkg.ViewBack, Shape: rect(48, 190, 12, 50, 6)},
	{ID: "back-forearm-left", Name: "Left Forearm (Back)", View: pkg.ViewBack, Shape: rect(140, 190, 12, 50, 6)},
	{ID: "back-hand-right", Name: "Right Hand (Back)", View: pkg.ViewBack, Shape: ellipse(54, 252, 10, 12)},
	{ID: "back-hand-left", Name: "Left Hand (Back)", View: pkg.ViewBack, Shape: ellipse(146, 252, 10, 12)},
	{ID: "back-hamstring-right", Name: "Right Hamstring", View: pkg.ViewBack, Shape: rect(82, 245, 16, 80, 8)},
	{ID: "back-hamstring-left", Name: "Left Hamstring", View: pkg.ViewBack, Shape: rect(102, 245, 16, 80, 8)},
	{ID: "back-calf-right", Name: "Right Calf", View: pkg.ViewBack, Shape: rect(84, 340, 13, 70, 6)},
	{ID: "back-calf-left", Name: "Left Calf", View: pkg.ViewBack, Shape: rect(103, 340, 13, 70, 6)},
	{ID: "back-foot-right", Name: "Right Foot (Back)", View: pkg.ViewBack, Shape: ellipse(90, 422, 12, 10)},
	{ID: "back-foot-left", Name: "Left Foot (Back)", View: pkg.ViewBack, Shape: ellipse(110, 422, 12, 10)},
}

func ellipse(cx, cy, rx, ry float64) Shape {
	return Shape{Kind: KindEllipse, CX: cx, CY: cy, RX: rx, RY: ry}
}

func circle(cx, cy, r float64) Shape {
	return Shape{Kind: KindCircle, CX: cx, CY: cy, R: r}
}

func rect(x, y, w, h, corner float64) Shape {
	return Shape{Kind: KindRect, X: x, Y: y, Width: w, Height: h, Corner: corner}
}
